package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
	"github.com/alzin/sham-al-aqar-syria/pkg/property"
)

type FavoritesRepositoryI interface {
	CreateTables(ctx context.Context) error
	GetFavorites(ctx context.Context, userId uuid.UUID) ([]property.Property, error)
	IsFavorite(ctx context.Context, userId uuid.UUID, propertyId uuid.UUID) (bool, error)
	InsertFavorite(ctx context.Context, userId uuid.UUID, propertyId uuid.UUID) (int64, error)
	DeleteFavorite(ctx context.Context, userId uuid.UUID, propertyId uuid.UUID) error
}

type FavoritesRepository struct {
	Pool *pgxpool.Pool
	Host string
	Port string
}

func NewFavoritesRepository(pool *pgxpool.Pool, host string, port string) FavoritesRepositoryI {
	return &FavoritesRepository{
		Pool: pool,
		Host: host,
		Port: port,
	}
}

func (r *FavoritesRepository) CreateTables(ctx context.Context) error {
	createTableQuery := `
	CREATE TABLE IF NOT EXISTS favorites (
		id          BIGSERIAL PRIMARY KEY,
		user_id     UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		property_id UUID NOT NULL REFERENCES properties(id) ON DELETE CASCADE,
		created_at  TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		CONSTRAINT favorites_user_property_unique UNIQUE (user_id, property_id)
	);`
	_, err := r.Pool.Exec(ctx, createTableQuery)
	if err != nil {
		return customerror.NewError("favoritesRepo.CreateTables", r.Host+":"+r.Port, err.Error())
	}
	return nil
}

func (r *FavoritesRepository) GetFavorites(ctx context.Context, userId uuid.UUID) ([]property.Property, error) {
	query := propertySelectQuery + `
		JOIN favorites ON favorites.property_id = properties.id
		WHERE favorites.user_id = $1
		ORDER BY favorites.id DESC`
	rows, err := r.Pool.Query(ctx, query, userId)
	if err != nil {
		return nil, customerror.NewError("favoritesRepo.GetFavorites", r.Host+":"+r.Port, err.Error())
	}
	defer rows.Close()
	properties := []property.Property{}
	for rows.Next() {
		var listing property.Property
		if err := scanProperty(rows, &listing); err != nil {
			return nil, customerror.NewError("favoritesRepo.GetFavorites", r.Host+":"+r.Port, err.Error())
		}
		properties = append(properties, listing)
	}
	return properties, nil
}

func (r *FavoritesRepository) IsFavorite(ctx context.Context, userId uuid.UUID, propertyId uuid.UUID) (bool, error) {
	query := `SELECT id FROM favorites WHERE user_id = $1 AND property_id = $2`
	var id int64
	err := r.Pool.QueryRow(ctx, query, userId, propertyId).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, customerror.NewError("favoritesRepo.IsFavorite", r.Host+":"+r.Port, err.Error())
	}
	return true, nil
}

func (r *FavoritesRepository) InsertFavorite(ctx context.Context, userId uuid.UUID, propertyId uuid.UUID) (int64, error) {
	query := `INSERT INTO favorites (user_id, property_id) VALUES ($1, $2) ON CONFLICT DO NOTHING RETURNING id`
	var id int64
	err := r.Pool.QueryRow(ctx, query, userId, propertyId).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		// The pair already existed; the unique constraint absorbed the race.
		return 0, nil
	}
	if err != nil {
		return 0, customerror.NewError("favoritesRepo.InsertFavorite", r.Host+":"+r.Port, err.Error())
	}
	return id, nil
}

func (r *FavoritesRepository) DeleteFavorite(ctx context.Context, userId uuid.UUID, propertyId uuid.UUID) error {
	query := `DELETE FROM favorites WHERE user_id = $1 AND property_id = $2`
	_, err := r.Pool.Exec(ctx, query, userId, propertyId)
	if err != nil {
		return customerror.NewError("favoritesRepo.DeleteFavorite", r.Host+":"+r.Port, err.Error())
	}
	return nil
}
