package property

import (
	"time"

	"github.com/google/uuid"

	modelsUser "github.com/alzin/sham-al-aqar-syria/pkg/user"
)

const (
	StatusSale = "sale"
	StatusRent = "rent"
)

const (
	TypeApartment  = "apartment"
	TypeHouse      = "house"
	TypeVilla      = "villa"
	TypeLand       = "land"
	TypeCommercial = "commercial"
)

const DefaultCurrency = "SYP"

type Property struct {
	Id           uuid.UUID       `json:"id"`
	Title        string          `json:"title"`
	Description  string          `json:"description"`
	PropertyType string          `json:"property_type"`
	Status       string          `json:"status"`
	Price        float64         `json:"price"`
	Currency     string          `json:"currency"`
	Area         float64         `json:"area"`
	Bedrooms     *int32          `json:"bedrooms"`
	Bathrooms    *int32          `json:"bathrooms"`
	Location     string          `json:"location"`
	City         string          `json:"city"`
	Images       []string        `json:"images"`
	UserId       uuid.UUID       `json:"user_id"`
	Owner        modelsUser.User `json:"owner"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ValidType(propertyType string) bool {
	switch propertyType {
	case TypeApartment, TypeHouse, TypeVilla, TypeLand, TypeCommercial:
		return true
	}
	return false
}

func ValidStatus(status string) bool {
	return status == StatusSale || status == StatusRent
}

// CoverImage is the first image of the listing, or empty if none.
func (property *Property) CoverImage() string {
	if len(property.Images) == 0 {
		return ""
	}
	return property.Images[0]
}
