package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
	"github.com/alzin/sham-al-aqar-syria/pkg/user"
)

type UserRepositoryI interface {
	CreateTables(ctx context.Context) error
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetUserByEmail(ctx context.Context, email string) (*user.User, error)
	InsertUser(ctx context.Context, user *user.User) error
	UpdateProfile(ctx context.Context, userId uuid.UUID, profile *user.Profile) error
	BumpJWTVersion(ctx context.Context, userId uuid.UUID) error
}

type UserRepository struct {
	Pool *pgxpool.Pool
	Host string
	Port string
}

func NewUserRepository(pool *pgxpool.Pool, host string, port string) UserRepositoryI {
	return &UserRepository{
		Pool: pool,
		Host: host,
		Port: port,
	}
}

func (userRepo *UserRepository) CreateTables(ctx context.Context) error {
	createUsersQuery := `
	CREATE TABLE IF NOT EXISTS users (
		id            UUID PRIMARY KEY,
		email         TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		jwt_version   INTEGER DEFAULT 0,
		created_at    TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err := userRepo.Pool.Exec(ctx, createUsersQuery)
	if err != nil {
		return customerror.NewError("userRepo.CreateTables", userRepo.Host+":"+userRepo.Port, err.Error())
	}

	createProfilesQuery := `
	CREATE TABLE IF NOT EXISTS profiles (
		user_id    UUID PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		first_name TEXT DEFAULT '',
		last_name  TEXT DEFAULT '',
		phone_text TEXT DEFAULT '',
		avatar_url TEXT DEFAULT '',
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);`
	_, err = userRepo.Pool.Exec(ctx, createProfilesQuery)
	if err != nil {
		return customerror.NewError("userRepo.CreateTables", userRepo.Host+":"+userRepo.Port, err.Error())
	}

	createIndexQuery := `CREATE INDEX IF NOT EXISTS users_email_idx ON users(email);`
	_, err = userRepo.Pool.Exec(ctx, createIndexQuery)
	if err != nil {
		return customerror.NewError("userRepo.CreateTables", userRepo.Host+":"+userRepo.Port, err.Error())
	}
	return nil
}

const userSelectQuery = `SELECT users.id, users.email, users.password_hash, users.jwt_version, users.created_at,
	profiles.first_name, profiles.last_name, profiles.phone_text, profiles.avatar_url
	FROM users JOIN profiles ON profiles.user_id = users.id`

func (userRepo *UserRepository) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var user user.User
	row := userRepo.Pool.QueryRow(ctx, userSelectQuery+` WHERE users.id = $1`, id)
	err := row.Scan(
		&user.UUID,
		&user.Email,
		&user.PasswordHash,
		&user.JWTVersion,
		&user.CreatedAt,
		&user.Profile.FirstName,
		&user.Profile.LastName,
		&user.Profile.PhoneText,
		&user.Profile.AvatarUrl,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, customerror.NewError("userRepo.GetUser", userRepo.Host+":"+userRepo.Port, err.Error())
	}
	return &user, nil
}

func (userRepo *UserRepository) GetUserByEmail(ctx context.Context, email string) (*user.User, error) {
	var user user.User
	row := userRepo.Pool.QueryRow(ctx, userSelectQuery+` WHERE users.email = $1`, email)
	err := row.Scan(
		&user.UUID,
		&user.Email,
		&user.PasswordHash,
		&user.JWTVersion,
		&user.CreatedAt,
		&user.Profile.FirstName,
		&user.Profile.LastName,
		&user.Profile.PhoneText,
		&user.Profile.AvatarUrl,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, pgx.ErrNoRows
		}
		return nil, customerror.NewError("userRepo.GetUserByEmail", userRepo.Host+":"+userRepo.Port, err.Error())
	}
	return &user, nil
}

// InsertUser creates the user row and its profile row in one
// transaction; the profile exists from the moment the account does.
func (userRepo *UserRepository) InsertUser(ctx context.Context, user *user.User) error {
	tx, err := userRepo.Pool.Begin(ctx)
	if err != nil {
		return customerror.NewError("userRepo.InsertUser", userRepo.Host+":"+userRepo.Port, err.Error())
	}
	defer tx.Rollback(ctx)

	insertUserQuery := `INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3)`
	_, err = tx.Exec(ctx, insertUserQuery, user.UUID, user.Email, user.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return customerror.ErrUserAlreadyExists
		}
		return customerror.NewError("userRepo.InsertUser", userRepo.Host+":"+userRepo.Port, err.Error())
	}

	insertProfileQuery := `INSERT INTO profiles (user_id, first_name, last_name, phone_text, avatar_url) VALUES ($1, $2, $3, $4, $5)`
	_, err = tx.Exec(ctx, insertProfileQuery, user.UUID, user.Profile.FirstName, user.Profile.LastName, user.Profile.PhoneText, user.Profile.AvatarUrl)
	if err != nil {
		return customerror.NewError("userRepo.InsertUser", userRepo.Host+":"+userRepo.Port, err.Error())
	}

	if err := tx.Commit(ctx); err != nil {
		return customerror.NewError("userRepo.InsertUser", userRepo.Host+":"+userRepo.Port, err.Error())
	}
	return nil
}

func (userRepo *UserRepository) UpdateProfile(ctx context.Context, userId uuid.UUID, profile *user.Profile) error {
	query := `UPDATE profiles SET first_name = $1, last_name = $2, phone_text = $3, avatar_url = $4, updated_at = CURRENT_TIMESTAMP WHERE user_id = $5`
	command, err := userRepo.Pool.Exec(ctx, query, profile.FirstName, profile.LastName, profile.PhoneText, profile.AvatarUrl, userId)
	if err != nil {
		return customerror.NewError("userRepo.UpdateProfile", userRepo.Host+":"+userRepo.Port, err.Error())
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// BumpJWTVersion invalidates every token the user holds.
func (userRepo *UserRepository) BumpJWTVersion(ctx context.Context, userId uuid.UUID) error {
	query := `UPDATE users SET jwt_version = jwt_version + 1 WHERE id = $1`
	command, err := userRepo.Pool.Exec(ctx, query, userId)
	if err != nil {
		return customerror.NewError("userRepo.BumpJWTVersion", userRepo.Host+":"+userRepo.Port, err.Error())
	}
	if command.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
