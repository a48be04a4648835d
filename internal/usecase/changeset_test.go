package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

func sampleBuyer() *entity.Buyer {
	return &entity.Buyer{
		ID:           "b-1",
		FullName:     "Rohan Mehta",
		Email:        "rohan@example.com",
		Phone:        "9876543210",
		City:         entity.CityChandigarh,
		PropertyType: entity.PropertyApartment,
		BHK:          entity.BHK2,
		Purpose:      entity.PurposeBuy,
		BudgetMin:    intPtr(4000000),
		BudgetMax:    intPtr(6000000),
		Timeline:     entity.Timeline3To6M,
		Source:       entity.SourceWebsite,
		Status:       entity.StatusNew,
		Tags:         []string{"hot"},
		OwnerID:      "u-1",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
}

func TestComputeChangeSet_NoChanges(t *testing.T) {
	old := sampleBuyer()
	updated := *old
	// UpdatedAt advances on every write but must not count as a change.
	updated.UpdatedAt = old.UpdatedAt.Add(time.Minute)

	changes := ComputeChangeSet(old, &updated)
	assert.Empty(t, changes)
}

func TestComputeChangeSet_FieldDiffs(t *testing.T) {
	old := sampleBuyer()
	updated := *old
	updated.Status = entity.StatusQualified
	updated.BudgetMax = intPtr(7000000)
	updated.Notes = "called twice"

	changes := ComputeChangeSet(old, &updated)

	assert.Len(t, changes, 3)
	assert.Equal(t, entity.FieldChange{From: entity.StatusNew, To: entity.StatusQualified}, changes["status"])
	assert.Equal(t, entity.FieldChange{From: 6000000, To: 7000000}, changes["budgetMax"])
	assert.Equal(t, entity.FieldChange{From: "", To: "called twice"}, changes["notes"])
}

func TestComputeChangeSet_BudgetNilTransitions(t *testing.T) {
	old := sampleBuyer()
	updated := *old
	updated.BudgetMin = nil

	changes := ComputeChangeSet(old, &updated)
	assert.Equal(t, entity.FieldChange{From: 4000000, To: nil}, changes["budgetMin"])

	// Same value behind different pointers is not a change.
	updated = *old
	updated.BudgetMin = intPtr(*old.BudgetMin)
	assert.Empty(t, ComputeChangeSet(old, &updated))
}

func TestComputeChangeSet_TagsOrderMatters(t *testing.T) {
	old := sampleBuyer()
	old.Tags = []string{"a", "b"}
	updated := *old
	updated.Tags = []string{"b", "a"}

	changes := ComputeChangeSet(old, &updated)
	assert.Contains(t, changes, "tags")
}
