package usecase

import (
	"github.com/propdesk/buyer-leads-api/internal/entity"
)

// BuyerInput is the full mutable field set of a lead. It is used for both
// create and update: on update the record is replaced wholesale, except that
// an empty Status keeps the persisted one (and defaults to New on create).
type BuyerInput struct {
	FullName     string              `json:"fullName"`
	Email        string              `json:"email"`
	Phone        string              `json:"phone"`
	City         entity.City         `json:"city"`
	PropertyType entity.PropertyType `json:"propertyType"`
	BHK          entity.BHK          `json:"bhk"`
	Purpose      entity.Purpose      `json:"purpose"`
	BudgetMin    *int                `json:"budgetMin"`
	BudgetMax    *int                `json:"budgetMax"`
	Timeline     entity.Timeline     `json:"timeline"`
	Source       entity.Source       `json:"source"`
	Notes        string              `json:"notes"`
	Tags         []string            `json:"tags"`
	Status       entity.Status       `json:"status"`
}

// CSVRecord is one data row of an import file, everything still a string.
type CSVRecord struct {
	FullName     string
	Email        string
	Phone        string
	City         string
	PropertyType string
	BHK          string
	Purpose      string
	BudgetMin    string
	BudgetMax    string
	Timeline     string
	Source       string
	Notes        string
	Tags         string
	Status       string
}

// ListBuyersInput carries raw filter values as they arrive from the caller.
type ListBuyersInput struct {
	Search       string
	City         string
	PropertyType string
	Status       string
	Timeline     string
	Page         int
	Limit        int
	SortBy       string
	SortOrder    string
}

type ListBuyersOutput struct {
	Buyers []*entity.Buyer `json:"buyers"`
	Total  int             `json:"total"`
	Page   int             `json:"page"`
	Limit  int             `json:"limit"`
}

type GetBuyerOutput struct {
	Buyer   *entity.Buyer          `json:"buyer"`
	History []*entity.BuyerHistory `json:"history"`
}

// RowError is one failed CSV row. Row is the 1-indexed display row in the
// file, header included, so the first data row is 2.
type RowError struct {
	Row     int    `json:"row"`
	Message string `json:"message"`
}

type ImportResult struct {
	SuccessCount int             `json:"success"`
	Errors       []RowError      `json:"errors"`
	Created      []*entity.Buyer `json:"buyers"`
}
