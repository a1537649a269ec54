package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alzin/sham-al-aqar-syria/internal/repository"
	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
	modelsProperty "github.com/alzin/sham-al-aqar-syria/pkg/property"
)

type PropertyServiceI interface {
	Search(filters modelsProperty.Filters, order string) ([]modelsProperty.Property, error)
	GetProperty(id uuid.UUID) (*modelsProperty.Property, error)
	GetPropertiesByOwner(userId uuid.UUID) ([]modelsProperty.Property, error)
	InsertProperty(listing *modelsProperty.Property) (uuid.UUID, error)
	UpdateProperty(listing *modelsProperty.Property) error
	DeleteProperty(id uuid.UUID, ownerId uuid.UUID) error
}

type PropertyService struct {
	propertyRepo repository.PropertyRepositoryI
	host         string
	port         string
}

func NewPropertyService(propertyRepo repository.PropertyRepositoryI, host string, port string) PropertyServiceI {
	return &PropertyService{
		propertyRepo: propertyRepo,
		host:         host,
		port:         port,
	}
}

// Search fetches the whole listing set and filters it in memory; the
// volume is small and there is no pagination. When the database read
// fails the static placeholder listings are served instead.
func (propertyService *PropertyService) Search(filters modelsProperty.Filters, order string) ([]modelsProperty.Property, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	properties, err := propertyService.propertyRepo.GetProperties(ctx)
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("PropertyService.Search")
		log.Print(customErr.Error())
		properties = modelsProperty.Fallback()
	}
	results := modelsProperty.Apply(properties, filters)
	return modelsProperty.SortResults(results, order), nil
}

func (propertyService *PropertyService) GetProperty(id uuid.UUID) (*modelsProperty.Property, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	listing, err := propertyService.propertyRepo.GetProperty(ctx, id)
	if err == pgx.ErrNoRows {
		return nil, err
	}
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("PropertyService.GetProperty")
		return nil, customErr
	}
	return listing, nil
}

func (propertyService *PropertyService) GetPropertiesByOwner(userId uuid.UUID) ([]modelsProperty.Property, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	properties, err := propertyService.propertyRepo.GetPropertiesByOwner(ctx, userId)
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("PropertyService.GetPropertiesByOwner")
		return []modelsProperty.Property{}, customErr
	}
	return properties, nil
}

func (propertyService *PropertyService) InsertProperty(listing *modelsProperty.Property) (uuid.UUID, error) {
	if listing.Id == uuid.Nil {
		listing.Id = uuid.New()
	}
	if listing.Currency == "" {
		listing.Currency = modelsProperty.DefaultCurrency
	}
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	id, err := propertyService.propertyRepo.InsertProperty(ctx, listing)
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("PropertyService.InsertProperty")
		return uuid.Nil, customErr
	}
	return id, nil
}

func (propertyService *PropertyService) UpdateProperty(listing *modelsProperty.Property) error {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	err := propertyService.propertyRepo.UpdateProperty(ctx, listing)
	if err == pgx.ErrNoRows {
		return err
	}
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("PropertyService.UpdateProperty")
		return customErr
	}
	return nil
}

func (propertyService *PropertyService) DeleteProperty(id uuid.UUID, ownerId uuid.UUID) error {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	err := propertyService.propertyRepo.DeleteProperty(ctx, id, ownerId)
	if err == pgx.ErrNoRows {
		return err
	}
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("PropertyService.DeleteProperty")
		return customErr
	}
	return nil
}
