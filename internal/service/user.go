package service

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alzin/sham-al-aqar-syria/internal/repository"
	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
	modelsUser "github.com/alzin/sham-al-aqar-syria/pkg/user"
)

type UserServiceI interface {
	UpdateProfile(userId uuid.UUID, profile *modelsUser.Profile) error
	SaveAvatar(user *modelsUser.User, file *multipart.FileHeader) (string, error)
}

type UserService struct {
	userRepo      repository.UserRepositoryI
	uploadService UploadServiceI
	host          string
	port          string
}

func NewUserService(userRepo repository.UserRepositoryI, uploadService UploadServiceI, host string, port string) UserServiceI {
	return &UserService{
		userRepo:      userRepo,
		uploadService: uploadService,
		host:          host,
		port:          port,
	}
}

func (userService *UserService) UpdateProfile(userId uuid.UUID, profile *modelsUser.Profile) error {
	ctx, close := context.WithTimeout(context.Background(), time.Minute)
	defer close()
	err := userService.userRepo.UpdateProfile(ctx, userId, profile)
	if err == pgx.ErrNoRows {
		return err
	}
	if err != nil {
		customErr := err.(customerror.CustomError)
		customErr.AppendModule("UserService.UpdateProfile")
		return customErr
	}
	return nil
}

// SaveAvatar uploads the picture and stores its URL on the profile.
func (userService *UserService) SaveAvatar(user *modelsUser.User, file *multipart.FileHeader) (string, error) {
	url, err := userService.uploadService.UploadAvatar(user.UUID, file)
	if err != nil {
		return "", err
	}
	profile := user.Profile
	profile.AvatarUrl = url
	if err := userService.UpdateProfile(user.UUID, &profile); err != nil {
		return "", err
	}
	return url, nil
}
