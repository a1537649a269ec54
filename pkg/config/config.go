package config

import (
	"os"

	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"

	"github.com/joho/godotenv"
)

type Config struct {
	DbHost     string
	DbPort     string
	DbUser     string
	DbPassword string
	DbName     string
	WebHost    string
	WebPort    string
	MainUrl    string
	SecretKey  string
	MediaDir   string
	Bucket     string
}

func NewConfig(dotenvPath string) (*Config, error) {
	err := godotenv.Load(dotenvPath)
	if err != nil {
		return &Config{}, customerror.NewError("config.NewConfig", "", err.Error())
	}
	var config Config
	config.DbHost = os.Getenv("DB_HOST")
	if config.DbHost == "" {
		return &Config{}, customerror.NewError("config.NewConfig", "", "DB_HOST incorrect")
	}
	config.DbPort = os.Getenv("DB_PORT")
	if config.DbPort == "" {
		return &Config{}, customerror.NewError("config.NewConfig", "", "DB_PORT incorrect")
	}
	config.DbUser = os.Getenv("DB_USER")
	if config.DbUser == "" {
		return &Config{}, customerror.NewError("config.NewConfig", "", "DB_USER incorrect")
	}
	config.DbPassword = os.Getenv("DB_PASSWORD")
	if config.DbPassword == "" {
		return &Config{}, customerror.NewError("config.NewConfig", "", "DB_PASSWORD incorrect")
	}
	config.DbName = os.Getenv("DB_NAME")
	if config.DbName == "" {
		return &Config{}, customerror.NewError("config.NewConfig", "", "DB_NAME incorrect")
	}
	config.WebHost = os.Getenv("WEB_HOST")
	if config.WebHost == "" {
		return &Config{}, customerror.NewError("config.NewConfig", "", "WEB_HOST incorrect")
	}
	config.WebPort = os.Getenv("WEB_PORT")
	if config.WebPort == "" {
		return &Config{}, customerror.NewError("config.NewConfig", "", "WEB_PORT incorrect")
	}
	config.MainUrl = os.Getenv("MAIN_URL")
	if config.MainUrl == "" {
		return &Config{}, customerror.NewError("config.NewConfig", "", "MAIN_URL empty")
	}
	config.SecretKey = os.Getenv("SECRET_KEY")
	if config.SecretKey == "" {
		return &Config{}, customerror.NewError("config.NewConfig", "", "SECRET_KEY empty")
	}
	config.MediaDir = os.Getenv("MEDIA_DIR")
	if config.MediaDir == "" {
		config.MediaDir = "./media"
	}
	config.Bucket = os.Getenv("BUCKET")
	if config.Bucket == "" {
		config.Bucket = "property_images"
	}
	return &config, nil
}
