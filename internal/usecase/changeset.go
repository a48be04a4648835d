package usecase

import (
	"slices"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

// ComputeChangeSet diffs two versions of a lead field by field, by value.
// ID, owner and timestamps are excluded: the id and owner never change, and
// UpdatedAt advances on every write so including it would make every update
// look like a change. An empty result means no history entry is owed.
func ComputeChangeSet(old, updated *entity.Buyer) entity.ChangeSet {
	changes := entity.ChangeSet{}

	if old.FullName != updated.FullName {
		changes["fullName"] = entity.FieldChange{From: old.FullName, To: updated.FullName}
	}
	if old.Email != updated.Email {
		changes["email"] = entity.FieldChange{From: old.Email, To: updated.Email}
	}
	if old.Phone != updated.Phone {
		changes["phone"] = entity.FieldChange{From: old.Phone, To: updated.Phone}
	}
	if old.City != updated.City {
		changes["city"] = entity.FieldChange{From: old.City, To: updated.City}
	}
	if old.PropertyType != updated.PropertyType {
		changes["propertyType"] = entity.FieldChange{From: old.PropertyType, To: updated.PropertyType}
	}
	if old.BHK != updated.BHK {
		changes["bhk"] = entity.FieldChange{From: old.BHK, To: updated.BHK}
	}
	if old.Purpose != updated.Purpose {
		changes["purpose"] = entity.FieldChange{From: old.Purpose, To: updated.Purpose}
	}
	if !intPtrEqual(old.BudgetMin, updated.BudgetMin) {
		changes["budgetMin"] = entity.FieldChange{From: intPtrValue(old.BudgetMin), To: intPtrValue(updated.BudgetMin)}
	}
	if !intPtrEqual(old.BudgetMax, updated.BudgetMax) {
		changes["budgetMax"] = entity.FieldChange{From: intPtrValue(old.BudgetMax), To: intPtrValue(updated.BudgetMax)}
	}
	if old.Timeline != updated.Timeline {
		changes["timeline"] = entity.FieldChange{From: old.Timeline, To: updated.Timeline}
	}
	if old.Source != updated.Source {
		changes["source"] = entity.FieldChange{From: old.Source, To: updated.Source}
	}
	if old.Status != updated.Status {
		changes["status"] = entity.FieldChange{From: old.Status, To: updated.Status}
	}
	if old.Notes != updated.Notes {
		changes["notes"] = entity.FieldChange{From: old.Notes, To: updated.Notes}
	}
	if !slices.Equal(old.Tags, updated.Tags) {
		changes["tags"] = entity.FieldChange{From: old.Tags, To: updated.Tags}
	}

	return changes
}

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func intPtrValue(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
