package usecase

import (
	"encoding/json"
	"net/mail"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/propdesk/buyer-leads-api/internal/entity"
)

var phoneRegex = regexp.MustCompile(`^\d+$`)

// ValidateBuyerInput checks structural constraints field by field, keeping
// only the first failure per field, then runs the cross-field rules.
func ValidateBuyerInput(input BuyerInput) ValidationErrors {
	var errs ValidationErrors

	// Length limits count characters, not bytes.
	if nameLen := utf8.RuneCountInString(input.FullName); nameLen < 2 {
		errs = append(errs, ValidationError{"fullName", "must be at least 2 characters"})
	} else if nameLen > 80 {
		errs = append(errs, ValidationError{"fullName", "must be at most 80 characters"})
	}

	if input.Email != "" {
		if _, err := mail.ParseAddress(input.Email); err != nil {
			errs = append(errs, ValidationError{"email", "invalid email format"})
		}
	}

	if len(input.Phone) < 10 {
		errs = append(errs, ValidationError{"phone", "must be at least 10 digits"})
	} else if len(input.Phone) > 15 {
		errs = append(errs, ValidationError{"phone", "must be at most 15 digits"})
	} else if !phoneRegex.MatchString(input.Phone) {
		errs = append(errs, ValidationError{"phone", "must contain only digits"})
	}

	if !input.City.Valid() {
		errs = append(errs, ValidationError{"city", "invalid city"})
	}

	propertyTypeOK := input.PropertyType.Valid()
	if !propertyTypeOK {
		errs = append(errs, ValidationError{"propertyType", "invalid property type"})
	}

	bhkOK := true
	if input.BHK != "" && !input.BHK.Valid() {
		bhkOK = false
		errs = append(errs, ValidationError{"bhk", "invalid bhk"})
	}

	if !input.Purpose.Valid() {
		errs = append(errs, ValidationError{"purpose", "invalid purpose"})
	}

	budgetMinOK := true
	if input.BudgetMin != nil && *input.BudgetMin <= 0 {
		budgetMinOK = false
		errs = append(errs, ValidationError{"budgetMin", "budget must be positive"})
	}
	budgetMaxOK := true
	if input.BudgetMax != nil && *input.BudgetMax <= 0 {
		budgetMaxOK = false
		errs = append(errs, ValidationError{"budgetMax", "budget must be positive"})
	}

	if !input.Timeline.Valid() {
		errs = append(errs, ValidationError{"timeline", "invalid timeline"})
	}

	if !input.Source.Valid() {
		errs = append(errs, ValidationError{"source", "invalid source"})
	}

	if input.Status != "" && !input.Status.Valid() {
		errs = append(errs, ValidationError{"status", "invalid status"})
	}

	if utf8.RuneCountInString(input.Notes) > 1000 {
		errs = append(errs, ValidationError{"notes", "must be at most 1000 characters"})
	}

	// Cross-field rules run only on structurally valid fields.
	if propertyTypeOK && bhkOK && input.PropertyType.RequiresBHK() && input.BHK == "" {
		errs = append(errs, ValidationError{"bhk", "bhk is required for Apartment and Villa property types"})
	}

	if budgetMinOK && budgetMaxOK && input.BudgetMin != nil && input.BudgetMax != nil &&
		*input.BudgetMax < *input.BudgetMin {
		errs = append(errs, ValidationError{"budgetMax", "maximum budget must be greater than or equal to minimum budget"})
	}

	return errs
}

// ParseCSVRow converts one string-typed import row into a BuyerInput and
// validates it. Budgets are parsed from decimal strings (empty means absent),
// tags accept a JSON array or a comma-separated list, and status defaults
// to New when the column is empty.
func ParseCSVRow(rec CSVRecord) (BuyerInput, ValidationErrors) {
	var errs ValidationErrors

	input := BuyerInput{
		FullName:     strings.TrimSpace(rec.FullName),
		Email:        strings.TrimSpace(rec.Email),
		Phone:        strings.TrimSpace(rec.Phone),
		City:         entity.City(strings.TrimSpace(rec.City)),
		PropertyType: entity.PropertyType(strings.TrimSpace(rec.PropertyType)),
		BHK:          entity.BHK(strings.TrimSpace(rec.BHK)),
		Purpose:      entity.Purpose(strings.TrimSpace(rec.Purpose)),
		Timeline:     entity.Timeline(strings.TrimSpace(rec.Timeline)),
		Source:       entity.Source(strings.TrimSpace(rec.Source)),
		Notes:        rec.Notes,
		Tags:         ParseTags(rec.Tags),
		Status:       entity.Status(strings.TrimSpace(rec.Status)),
	}

	var perr error
	if input.BudgetMin, perr = parseBudget(rec.BudgetMin); perr != nil {
		errs = append(errs, ValidationError{"budgetMin", "must be a whole number"})
	}
	if input.BudgetMax, perr = parseBudget(rec.BudgetMax); perr != nil {
		errs = append(errs, ValidationError{"budgetMax", "must be a whole number"})
	}

	errs = append(errs, ValidateBuyerInput(input)...)
	return input, errs
}

func parseBudget(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, err
	}
	return &n, nil
}

// ParseTags accepts either a JSON-encoded string array or a comma-separated
// list. Comma-split tokens are trimmed and empty ones dropped.
func ParseTags(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var fromJSON []string
	if err := json.Unmarshal([]byte(raw), &fromJSON); err == nil {
		return fromJSON
	}

	tags := []string{}
	for _, tok := range strings.Split(raw, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			tags = append(tags, tok)
		}
	}
	return tags
}
