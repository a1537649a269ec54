package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alzin/sham-al-aqar-syria/internal/repository"
	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
	"github.com/alzin/sham-al-aqar-syria/pkg/security"
	"github.com/alzin/sham-al-aqar-syria/pkg/user"
)

type AuthServiceI interface {
	SignUp(email string, password string, firstname string, lastname string, phone string) (*user.User, error)
	SignIn(email string, password string) (*user.User, error)
	SignOut(userId uuid.UUID) error
}

type AuthService struct {
	userRepo repository.UserRepositoryI
	host     string
	port     string
}

func NewAuthService(userRepo repository.UserRepositoryI, host string, port string) AuthServiceI {
	return &AuthService{
		userRepo: userRepo,
		host:     host,
		port:     port,
	}
}

// SignUp creates the account and its profile row in one step; the
// profile fields come straight from the registration form.
func (authService *AuthService) SignUp(email string, password string, firstname string, lastname string, phone string) (*user.User, error) {
	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return nil, customerror.NewError("AuthService.SignUp", authService.host+":"+authService.port, err.Error())
	}
	newUser := &user.User{
		UUID:         uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Profile: user.Profile{
			FirstName: firstname,
			LastName:  lastname,
			PhoneText: phone,
		},
	}
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	err = authService.userRepo.InsertUser(ctx, newUser)
	if errors.Is(err, customerror.ErrUserAlreadyExists) {
		return nil, err
	}
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("AuthService.SignUp")
		return nil, customErr
	}
	return newUser, nil
}

func (authService *AuthService) SignIn(email string, password string) (*user.User, error) {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	user, err := authService.userRepo.GetUserByEmail(ctx, email)
	if err == pgx.ErrNoRows {
		return nil, customerror.ErrWrongCredentials
	}
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("AuthService.SignIn")
		return nil, customErr
	}
	if !security.CheckPassword(user.PasswordHash, password) {
		return nil, customerror.ErrWrongCredentials
	}
	return user, nil
}

// SignOut bumps the user's token version so every issued token stops
// validating.
func (authService *AuthService) SignOut(userId uuid.UUID) error {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	err := authService.userRepo.BumpJWTVersion(ctx, userId)
	if err == pgx.ErrNoRows {
		return err
	}
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("AuthService.SignOut")
		return customErr
	}
	return nil
}
