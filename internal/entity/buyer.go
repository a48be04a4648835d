package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type City string

const (
	CityChandigarh City = "Chandigarh"
	CityMohali     City = "Mohali"
	CityZirakpur   City = "Zirakpur"
	CityPanchkula  City = "Panchkula"
	CityOther      City = "Other"
)

func (c City) Valid() bool {
	switch c {
	case CityChandigarh, CityMohali, CityZirakpur, CityPanchkula, CityOther:
		return true
	}
	return false
}

type PropertyType string

const (
	PropertyApartment PropertyType = "Apartment"
	PropertyVilla     PropertyType = "Villa"
	PropertyPlot      PropertyType = "Plot"
	PropertyOffice    PropertyType = "Office"
	PropertyRetail    PropertyType = "Retail"
)

func (p PropertyType) Valid() bool {
	switch p {
	case PropertyApartment, PropertyVilla, PropertyPlot, PropertyOffice, PropertyRetail:
		return true
	}
	return false
}

// RequiresBHK reports whether listings of this type are sized in bedrooms.
// Plots, offices and retail units have no BHK count.
func (p PropertyType) RequiresBHK() bool {
	return p == PropertyApartment || p == PropertyVilla
}

type BHK string

const (
	BHK1      BHK = "1"
	BHK2      BHK = "2"
	BHK3      BHK = "3"
	BHK4      BHK = "4"
	BHKStudio BHK = "Studio"
)

func (b BHK) Valid() bool {
	switch b {
	case BHK1, BHK2, BHK3, BHK4, BHKStudio:
		return true
	}
	return false
}

type Purpose string

const (
	PurposeBuy  Purpose = "Buy"
	PurposeRent Purpose = "Rent"
)

func (p Purpose) Valid() bool {
	return p == PurposeBuy || p == PurposeRent
}

type Timeline string

const (
	TimelineUnder3M   Timeline = "0-3m"
	Timeline3To6M     Timeline = "3-6m"
	TimelineOver6M    Timeline = ">6m"
	TimelineExploring Timeline = "Exploring"
)

func (t Timeline) Valid() bool {
	switch t {
	case TimelineUnder3M, Timeline3To6M, TimelineOver6M, TimelineExploring:
		return true
	}
	return false
}

type Source string

const (
	SourceWebsite  Source = "Website"
	SourceReferral Source = "Referral"
	SourceWalkIn   Source = "Walk-in"
	SourceCall     Source = "Call"
	SourceOther    Source = "Other"
)

func (s Source) Valid() bool {
	switch s {
	case SourceWebsite, SourceReferral, SourceWalkIn, SourceCall, SourceOther:
		return true
	}
	return false
}

type Status string

const (
	StatusNew         Status = "New"
	StatusQualified   Status = "Qualified"
	StatusContacted   Status = "Contacted"
	StatusVisited     Status = "Visited"
	StatusNegotiation Status = "Negotiation"
	StatusConverted   Status = "Converted"
	StatusDropped     Status = "Dropped"
)

func (s Status) Valid() bool {
	switch s {
	case StatusNew, StatusQualified, StatusContacted, StatusVisited,
		StatusNegotiation, StatusConverted, StatusDropped:
		return true
	}
	return false
}

// Buyer is a prospective property buyer tracked through the sales pipeline.
// UpdatedAt doubles as the optimistic-concurrency token: every successful
// mutation stamps a new value, and updates must present the value they read.
type Buyer struct {
	ID           string       `json:"id"`
	FullName     string       `json:"fullName"`
	Email        string       `json:"email,omitempty"`
	Phone        string       `json:"phone"`
	City         City         `json:"city"`
	PropertyType PropertyType `json:"propertyType"`
	BHK          BHK          `json:"bhk,omitempty"`
	Purpose      Purpose      `json:"purpose"`
	BudgetMin    *int         `json:"budgetMin,omitempty"`
	BudgetMax    *int         `json:"budgetMax,omitempty"`
	Timeline     Timeline     `json:"timeline"`
	Source       Source       `json:"source"`
	Status       Status       `json:"status"`
	Notes        string       `json:"notes,omitempty"`
	Tags         []string     `json:"tags"`
	OwnerID      string       `json:"ownerId"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Now returns the timestamp mutations stamp onto records. Truncated to
// microseconds, the resolution of a timestamptz column, so the UpdatedAt a
// caller gets back is byte-equal to what a later read returns. A finer stamp
// would make every response token fail the concurrency check.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Microsecond)
}

// NewBuyer stamps identity, ownership and timestamps onto a validated record.
func NewBuyer(ownerID string) *Buyer {
	now := Now()
	return &Buyer{
		ID:        uuid.New().String(),
		Status:    StatusNew,
		Tags:      []string{},
		OwnerID:   ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SortField is the whitelist of columns FindMany may order by.
type SortField string

const (
	SortByUpdatedAt SortField = "updatedAt"
	SortByFullName  SortField = "fullName"
	SortByCreatedAt SortField = "createdAt"
)

func (f SortField) Valid() bool {
	return f == SortByUpdatedAt || f == SortByFullName || f == SortByCreatedAt
}

// BuyerQuery carries the normalized list filters down to the repository.
type BuyerQuery struct {
	Search       string
	City         City
	PropertyType PropertyType
	Status       Status
	Timeline     Timeline
	Page         int
	Limit        int
	SortBy       SortField
	SortOrder    string // "asc" or "desc"
}

type BuyerRepositoryInterface interface {
	Create(ctx context.Context, b *Buyer) error

	// UpdateIfUnchanged persists b only while the stored updated_at still
	// equals expectedUpdatedAt. Returns ErrStaleWrite when another writer
	// got there first.
	UpdateIfUnchanged(ctx context.Context, b *Buyer, expectedUpdatedAt time.Time) error

	// DeleteOwned removes the buyer only when it exists and belongs to
	// ownerID; otherwise ErrBuyerAccessDenied.
	DeleteOwned(ctx context.Context, id, ownerID string) error

	FindByID(ctx context.Context, id string) (*Buyer, error)

	// FindMany returns one page of matches plus the pre-pagination total.
	FindMany(ctx context.Context, q BuyerQuery) ([]*Buyer, int, error)
}
