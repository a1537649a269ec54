package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/alzin/sham-al-aqar-syria/internal/repository"
	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
	modelsProperty "github.com/alzin/sham-al-aqar-syria/pkg/property"
)

type FavoritesServiceI interface {
	GetFavorites(userId uuid.UUID) ([]modelsProperty.Property, error)
	IsFavorite(userId uuid.UUID, propertyId uuid.UUID) (bool, error)
	Toggle(userId uuid.UUID, propertyId uuid.UUID) (bool, error)
}

type FavoritesService struct {
	favoritesRepo repository.FavoritesRepositoryI
	host          string
	port          string
}

func NewFavoritesService(favoritesRepo repository.FavoritesRepositoryI, host string, port string) FavoritesServiceI {
	return &FavoritesService{
		favoritesRepo: favoritesRepo,
		host:          host,
		port:          port,
	}
}

func (favoritesService *FavoritesService) GetFavorites(userId uuid.UUID) ([]modelsProperty.Property, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	properties, err := favoritesService.favoritesRepo.GetFavorites(ctx, userId)
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("FavoritesService.GetFavorites")
		return []modelsProperty.Property{}, customErr
	}
	return properties, nil
}

func (favoritesService *FavoritesService) IsFavorite(userId uuid.UUID, propertyId uuid.UUID) (bool, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	favorite, err := favoritesService.favoritesRepo.IsFavorite(ctx, userId, propertyId)
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("FavoritesService.IsFavorite")
		return false, customErr
	}
	return favorite, nil
}

// Toggle checks existence first and flips the pair: present rows are
// deleted, absent pairs inserted. The returned bool is the state after
// the call.
func (favoritesService *FavoritesService) Toggle(userId uuid.UUID, propertyId uuid.UUID) (bool, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	favorite, err := favoritesService.favoritesRepo.IsFavorite(ctx, userId, propertyId)
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("FavoritesService.Toggle")
		return false, customErr
	}
	if favorite {
		err = favoritesService.favoritesRepo.DeleteFavorite(ctx, userId, propertyId)
		if err != nil {
			customErr := err.(customerror.CustomError)
			customErr.AppendModule("FavoritesService.Toggle")
			return true, customErr
		}
		return false, nil
	}
	_, err = favoritesService.favoritesRepo.InsertFavorite(ctx, userId, propertyId)
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("FavoritesService.Toggle")
		return false, customErr
	}
	return true, nil
}
