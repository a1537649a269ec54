package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	modelsProperty "github.com/alzin/sham-al-aqar-syria/pkg/property"
)

type pair struct {
	userId     uuid.UUID
	propertyId uuid.UUID
}

// fakeFavoritesRepo keeps the (user, property) pairs in a map, the same
// contract the unique constraint gives the real table.
type fakeFavoritesRepo struct {
	pairs  map[pair]int64
	nextId int64
}

func newFakeFavoritesRepo() *fakeFavoritesRepo {
	return &fakeFavoritesRepo{pairs: map[pair]int64{}, nextId: 1}
}

func (repo *fakeFavoritesRepo) CreateTables(ctx context.Context) error { return nil }

func (repo *fakeFavoritesRepo) GetFavorites(ctx context.Context, userId uuid.UUID) ([]modelsProperty.Property, error) {
	properties := []modelsProperty.Property{}
	for key := range repo.pairs {
		if key.userId == userId {
			properties = append(properties, modelsProperty.Property{Id: key.propertyId})
		}
	}
	return properties, nil
}

func (repo *fakeFavoritesRepo) IsFavorite(ctx context.Context, userId uuid.UUID, propertyId uuid.UUID) (bool, error) {
	_, ok := repo.pairs[pair{userId, propertyId}]
	return ok, nil
}

func (repo *fakeFavoritesRepo) InsertFavorite(ctx context.Context, userId uuid.UUID, propertyId uuid.UUID) (int64, error) {
	key := pair{userId, propertyId}
	if _, ok := repo.pairs[key]; ok {
		return 0, nil
	}
	repo.pairs[key] = repo.nextId
	repo.nextId++
	return repo.pairs[key], nil
}

func (repo *fakeFavoritesRepo) DeleteFavorite(ctx context.Context, userId uuid.UUID, propertyId uuid.UUID) error {
	delete(repo.pairs, pair{userId, propertyId})
	return nil
}

func TestToggleFlipsState(t *testing.T) {
	repo := newFakeFavoritesRepo()
	favoritesService := NewFavoritesService(repo, "localhost", "8080")
	userId := uuid.New()
	propertyId := uuid.New()

	state, err := favoritesService.Toggle(userId, propertyId)
	require.NoError(t, err)
	assert.True(t, state)

	saved, err := favoritesService.IsFavorite(userId, propertyId)
	require.NoError(t, err)
	assert.True(t, saved)

	state, err = favoritesService.Toggle(userId, propertyId)
	require.NoError(t, err)
	assert.False(t, state)

	saved, err = favoritesService.IsFavorite(userId, propertyId)
	require.NoError(t, err)
	assert.False(t, saved)
}

func TestToggleIsPerUser(t *testing.T) {
	repo := newFakeFavoritesRepo()
	favoritesService := NewFavoritesService(repo, "localhost", "8080")
	firstUser := uuid.New()
	secondUser := uuid.New()
	propertyId := uuid.New()

	_, err := favoritesService.Toggle(firstUser, propertyId)
	require.NoError(t, err)

	saved, err := favoritesService.IsFavorite(secondUser, propertyId)
	require.NoError(t, err)
	assert.False(t, saved)

	properties, err := favoritesService.GetFavorites(firstUser)
	require.NoError(t, err)
	require.Len(t, properties, 1)
	assert.Equal(t, propertyId, properties[0].Id)
}
