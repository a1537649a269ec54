package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alzin/sham-al-aqar-syria/pkg/contact"
	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
)

type ContactRepositoryI interface {
	CreateTables(ctx context.Context) error
	InsertContactRequest(ctx context.Context, request *contact.ContactRequest) (int64, error)
}

type ContactRepository struct {
	Pool *pgxpool.Pool
	Host string
	Port string
}

func NewContactRepository(pool *pgxpool.Pool, host string, port string) ContactRepositoryI {
	return &ContactRepository{
		Pool: pool,
		Host: host,
		Port: port,
	}
}

func (r *ContactRepository) CreateTables(ctx context.Context) error {
	createTableQuery := `
	CREATE TABLE IF NOT EXISTS contact_requests (
		id         BIGSERIAL PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL,
		phone      TEXT DEFAULT '',
		subject    TEXT DEFAULT '',
		message    TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := r.Pool.Exec(ctx, createTableQuery)
	if err != nil {
		return customerror.NewError("contactRepo.CreateTables", r.Host+":"+r.Port, err.Error())
	}
	return nil
}

func (r *ContactRepository) InsertContactRequest(ctx context.Context, request *contact.ContactRequest) (int64, error) {
	query := `INSERT INTO contact_requests (name, email, phone, subject, message) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	var id int64
	err := r.Pool.QueryRow(ctx, query, request.Name, request.Email, request.Phone, request.Subject, request.Message).Scan(&id)
	if err != nil {
		return 0, customerror.NewError("contactRepo.InsertContactRequest", r.Host+":"+r.Port, err.Error())
	}
	return id, nil
}
