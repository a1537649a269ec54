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

type PropertyRepositoryI interface {
	CreateTables(ctx context.Context) error
	GetProperties(ctx context.Context) ([]property.Property, error)
	GetPropertiesByOwner(ctx context.Context, userId uuid.UUID) ([]property.Property, error)
	GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error)
	InsertProperty(ctx context.Context, property *property.Property) (uuid.UUID, error)
	UpdateProperty(ctx context.Context, property *property.Property) error
	DeleteProperty(ctx context.Context, id uuid.UUID, ownerId uuid.UUID) error
}

type PropertyRepository struct {
	Pool *pgxpool.Pool
	Host string
	Port string
}

func NewPropertyRepository(pool *pgxpool.Pool, host string, port string) PropertyRepositoryI {
	return &PropertyRepository{
		Pool: pool,
		Host: host,
		Port: port,
	}
}

func (propertyRepo *PropertyRepository) CreateTables(ctx context.Context) error {
	createTableQuery := `
	CREATE TABLE IF NOT EXISTS properties (
		id            UUID PRIMARY KEY,
		title         TEXT NOT NULL,
		description   TEXT DEFAULT '',
		property_type TEXT NOT NULL,
		status        TEXT NOT NULL,
		price         DOUBLE PRECISION NOT NULL,
		currency      TEXT NOT NULL DEFAULT 'SYP',
		area          DOUBLE PRECISION NOT NULL,
		bedrooms      INTEGER,
		bathrooms     INTEGER,
		location      TEXT NOT NULL,
		city          TEXT NOT NULL,
		images        TEXT[] NOT NULL DEFAULT '{}',
		user_id       UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := propertyRepo.Pool.Exec(ctx, createTableQuery)
	if err != nil {
		return customerror.NewError("propertyRepo.CreateTables", propertyRepo.Host+":"+propertyRepo.Port, err.Error())
	}

	createIndexQuery := `CREATE INDEX IF NOT EXISTS properties_user_id_idx ON properties(user_id);`
	_, err = propertyRepo.Pool.Exec(ctx, createIndexQuery)
	if err != nil {
		return customerror.NewError("propertyRepo.CreateTables", propertyRepo.Host+":"+propertyRepo.Port, err.Error())
	}

	createIndexQuery = `CREATE INDEX IF NOT EXISTS properties_created_at_idx ON properties(created_at);`
	_, err = propertyRepo.Pool.Exec(ctx, createIndexQuery)
	if err != nil {
		return customerror.NewError("propertyRepo.CreateTables", propertyRepo.Host+":"+propertyRepo.Port, err.Error())
	}
	return nil
}

const propertySelectQuery = `SELECT properties.id, properties.title, properties.description, properties.property_type,
	properties.status, properties.price, properties.currency, properties.area, properties.bedrooms, properties.bathrooms,
	properties.location, properties.city, properties.images, properties.user_id, properties.created_at, properties.updated_at,
	profiles.first_name, profiles.last_name, profiles.phone_text, profiles.avatar_url
	FROM properties JOIN profiles ON profiles.user_id = properties.user_id`

func scanProperty(row pgx.Row, listing *property.Property) error {
	err := row.Scan(
		&listing.Id,
		&listing.Title,
		&listing.Description,
		&listing.PropertyType,
		&listing.Status,
		&listing.Price,
		&listing.Currency,
		&listing.Area,
		&listing.Bedrooms,
		&listing.Bathrooms,
		&listing.Location,
		&listing.City,
		&listing.Images,
		&listing.UserId,
		&listing.CreatedAt,
		&listing.UpdatedAt,
		&listing.Owner.Profile.FirstName,
		&listing.Owner.Profile.LastName,
		&listing.Owner.Profile.PhoneText,
		&listing.Owner.Profile.AvatarUrl,
	)
	if err != nil {
		return err
	}
	listing.Owner.UUID = listing.UserId
	return nil
}

func (propertyRepo *PropertyRepository) GetProperties(ctx context.Context) ([]property.Property, error) {
	query := propertySelectQuery + ` ORDER BY properties.created_at DESC`
	rows, err := propertyRepo.Pool.Query(ctx, query)
	if err != nil {
		return nil, customerror.NewError("propertyRepo.GetProperties", propertyRepo.Host+":"+propertyRepo.Port, err.Error())
	}
	defer rows.Close()
	properties := []property.Property{}
	for rows.Next() {
		var listing property.Property
		if err := scanProperty(rows, &listing); err != nil {
			return nil, customerror.NewError("propertyRepo.GetProperties", propertyRepo.Host+":"+propertyRepo.Port, err.Error())
		}
		properties = append(properties, listing)
	}
	return properties, nil
}

func (propertyRepo *PropertyRepository) GetPropertiesByOwner(ctx context.Context, userId uuid.UUID) ([]property.Property, error) {
	query := propertySelectQuery + ` WHERE properties.user_id = $1 ORDER BY properties.created_at DESC`
	rows, err := propertyRepo.Pool.Query(ctx, query, userId)
	if err != nil {
		return nil, customerror.NewError("propertyRepo.GetPropertiesByOwner", propertyRepo.Host+":"+propertyRepo.Port, err.Error())
	}
	defer rows.Close()
	properties := []property.Property{}
	for rows.Next() {
		var listing property.Property
		if err := scanProperty(rows, &listing); err != nil {
			return nil, customerror.NewError("propertyRepo.GetPropertiesByOwner", propertyRepo.Host+":"+propertyRepo.Port, err.Error())
		}
		properties = append(properties, listing)
	}
	return properties, nil
}

func (propertyRepo *PropertyRepository) GetProperty(ctx context.Context, id uuid.UUID) (*property.Property, error) {
	var listing property.Property
	row := propertyRepo.Pool.QueryRow(ctx, propertySelectQuery+` WHERE properties.id = $1`, id)
	err := scanProperty(row, &listing)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, customerror.NewError("propertyRepo.GetProperty", propertyRepo.Host+":"+propertyRepo.Port, err.Error())
	}
	return &listing, nil
}

func (propertyRepo *PropertyRepository) InsertProperty(ctx context.Context, listing *property.Property) (uuid.UUID, error) {
	query := `INSERT INTO properties (id, title, description, property_type, status, price, currency, area, bedrooms, bathrooms, location, city, images, user_id)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14) RETURNING id`
	var id uuid.UUID
	err := propertyRepo.Pool.QueryRow(ctx, query,
		listing.Id,
		listing.Title,
		listing.Description,
		listing.PropertyType,
		listing.Status,
		listing.Price,
		listing.Currency,
		listing.Area,
		listing.Bedrooms,
		listing.Bathrooms,
		listing.Location,
		listing.City,
		listing.Images,
		listing.UserId,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, customerror.NewError("propertyRepo.InsertProperty", propertyRepo.Host+":"+propertyRepo.Port, err.Error())
	}
	return id, nil
}

// UpdateProperty mutates only rows owned by listing.UserId; a zero
// row count means not found or not the owner's row.
func (propertyRepo *PropertyRepository) UpdateProperty(ctx context.Context, listing *property.Property) error {
	query := `UPDATE properties SET title = $1, description = $2, property_type = $3, status = $4, price = $5,
	currency = $6, area = $7, bedrooms = $8, bathrooms = $9, location = $10, city = $11, images = $12,
	updated_at = CURRENT_TIMESTAMP WHERE id = $13 AND user_id = $14`
	command, err := propertyRepo.Pool.Exec(ctx, query,
		listing.Title,
		listing.Description,
		listing.PropertyType,
		listing.Status,
		listing.Price,
		listing.Currency,
		listing.Area,
		listing.Bedrooms,
		listing.Bathrooms,
		listing.Location,
		listing.City,
		listing.Images,
		listing.Id,
		listing.UserId,
	)
	if err != nil {
		return customerror.NewError("propertyRepo.UpdateProperty", propertyRepo.Host+":"+propertyRepo.Port, err.Error())
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (propertyRepo *PropertyRepository) DeleteProperty(ctx context.Context, id uuid.UUID, ownerId uuid.UUID) error {
	query := `DELETE FROM properties WHERE id = $1 AND user_id = $2`
	command, err := propertyRepo.Pool.Exec(ctx, query, id, ownerId)
	if err != nil {
		return customerror.NewError("propertyRepo.DeleteProperty", propertyRepo.Host+":"+propertyRepo.Port, err.Error())
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
