package entities

import (
	"encoding/json"

	"github.com/volatiletech/null/v8"
	domainerrors "github.com/yogeshwar16/realestatehousing/internal/domain/errors"
)

// PropertyType discriminates listing categories
type PropertyType string

const (
	PropertyTypeLand     PropertyType = "LAND"
	PropertyTypeFlat     PropertyType = "FLAT"
	PropertyTypeRowHouse PropertyType = "ROW_HOUSE"
	PropertyTypeBungalow PropertyType = "BUNGALOW"
)

// PropertyTypes lists every valid listing category.
var PropertyTypes = []PropertyType{
	PropertyTypeLand,
	PropertyTypeFlat,
	PropertyTypeRowHouse,
	PropertyTypeBungalow,
}

// ParsePropertyType maps a wire token to a PropertyType, rejecting anything
// outside the closed set.
func ParsePropertyType(token string) (PropertyType, error) {
	switch PropertyType(token) {
	case PropertyTypeLand, PropertyTypeFlat, PropertyTypeRowHouse, PropertyTypeBungalow:
		return PropertyType(token), nil
	}
	return "", domainerrors.UnknownToken("property type", token)
}

func (t *PropertyType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParsePropertyType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Property represents a listing owned by exactly one seller. The seller is
// embedded so callers can decide inquiry eligibility without a second fetch.
type Property struct {
	ID             null.Int64   `json:"id"`
	PropertyType   PropertyType `json:"property_type"`
	Title          string       `json:"title"`
	Description    null.String  `json:"description"`
	PropertySize   float64      `json:"property_size"`
	Price          float64      `json:"price"`
	Address        string       `json:"address"`
	City           string       `json:"city"`
	State          string       `json:"state"`
	Pincode        string       `json:"pincode"`
	Latitude       null.Float64 `json:"latitude"`
	Longitude      null.Float64 `json:"longitude"`
	PropertyImages null.String  `json:"property_images"`
	PTRDocument    null.String  `json:"ptr_document"`
	Seller         *User        `json:"seller,omitempty"`
	IsActive       null.Bool    `json:"is_active"`
	CreatedAt      null.Time    `json:"created_at"`
	UpdatedAt      null.Time    `json:"updated_at"`
}

// OwnedBy reports whether the listing belongs to the given user.
func (p *Property) OwnedBy(userID int64) bool {
	return p.Seller != nil && p.Seller.UserID.Valid && p.Seller.UserID.Int64 == userID
}
