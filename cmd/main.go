package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"

	"github.com/alzin/sham-al-aqar-syria/internal/handler"
	"github.com/alzin/sham-al-aqar-syria/internal/middlewares"
	"github.com/alzin/sham-al-aqar-syria/internal/repository"
	"github.com/alzin/sham-al-aqar-syria/internal/service"
	"github.com/alzin/sham-al-aqar-syria/internal/storage"
	"github.com/alzin/sham-al-aqar-syria/pkg/cleaner"
	"github.com/alzin/sham-al-aqar-syria/pkg/config"
)

func initMonthlyCleaner(pool *pgxpool.Pool, bucket storage.BucketI, appConfig *config.Config) {
	c := cron.New()

	// 00:00 on the first day of every month
	_, err := c.AddFunc("0 0 1 * *", func() {
		cleaner.Clean(pool, bucket, appConfig.MediaDir, appConfig.Bucket)
	})

	if err != nil {
		log.Fatalf("Failed to schedule cleanup job: %v", err)
	}

	go c.Start()
}

func main() {
	appConfig, err := config.NewConfig(".env")
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
	connStr := fmt.Sprintf("postgres://%s:%s@%s:%s/%s", appConfig.DbUser, appConfig.DbPassword, appConfig.DbHost, appConfig.DbPort, appConfig.DbName)
	dbconfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
	dbconfig.MaxConns = 100
	dbconfig.MinConns = 10
	dbconfig.MaxConnLifetime = 1 * time.Hour
	dbconfig.MaxConnIdleTime = 15 * time.Minute
	pool, err := pgxpool.NewWithConfig(context.Background(), dbconfig)
	if err != nil {
		log.Fatalf("%s", err.Error())
	}
	defer pool.Close()
	if err := pool.Ping(context.Background()); err != nil {
		log.Fatalf("%s", err.Error())
	}

	userRepository := repository.NewUserRepository(pool, appConfig.WebHost, appConfig.WebPort)
	propertyRepository := repository.NewPropertyRepository(pool, appConfig.WebHost, appConfig.WebPort)
	favoritesRepository := repository.NewFavoritesRepository(pool, appConfig.WebHost, appConfig.WebPort)
	contactRepository := repository.NewContactRepository(pool, appConfig.WebHost, appConfig.WebPort)

	err = userRepository.CreateTables(context.Background())
	if err != nil {
		log.Fatal(err.Error())
	}
	err = propertyRepository.CreateTables(context.Background())
	if err != nil {
		log.Fatal(err.Error())
	}
	err = favoritesRepository.CreateTables(context.Background())
	if err != nil {
		log.Fatal(err.Error())
	}
	err = contactRepository.CreateTables(context.Background())
	if err != nil {
		log.Fatal(err.Error())
	}

	bucket := storage.NewBucket(appConfig.MediaDir, appConfig.Bucket, appConfig.MainUrl)
	// Best effort: a missing bucket is created, a failure only logged.
	if err := bucket.Ensure(); err != nil {
		log.Print(err.Error())
	}

	initMonthlyCleaner(pool, bucket, appConfig)

	jwtService := service.NewJWTService(appConfig, userRepository)
	authService := service.NewAuthService(userRepository, appConfig.WebHost, appConfig.WebPort)
	propertyService := service.NewPropertyService(propertyRepository, appConfig.WebHost, appConfig.WebPort)
	uploadService := service.NewUploadService(bucket, appConfig.WebHost, appConfig.WebPort)
	favoritesService := service.NewFavoritesService(favoritesRepository, appConfig.WebHost, appConfig.WebPort)
	contactService := service.NewContactService(contactRepository, appConfig.WebHost, appConfig.WebPort)
	userService := service.NewUserService(userRepository, uploadService, appConfig.WebHost, appConfig.WebPort)

	middlewares := middlewares.NewMiddlewares(jwtService, propertyService, appConfig.WebHost, appConfig.WebPort)

	authHandler := handler.NewAuthHandler(authService, jwtService, middlewares)
	propertyHandler := handler.NewPropertyHandler(propertyService, middlewares)
	uploadHandler := handler.NewUploadHandler(uploadService, middlewares)
	favoritesHandler := handler.NewFavoritesHandler(favoritesService, propertyService, middlewares)
	contactHandler := handler.NewContactHandler(contactService)
	profileHandler := handler.NewProfileHandler(userService, middlewares)

	router := gin.Default()
	router.Static("/media", appConfig.MediaDir)
	api := router.Group("/api")
	v1 := api.Group("/v1")
	auth := v1.Group("/auth")
	auth.POST("/refresh-token", middlewares.ValidUser(), func(ctx *gin.Context) {
		handler.RefreshToken(ctx, jwtService)
	})

	authHandler.RegisterRoutes(auth)
	propertyHandler.RegisterRoutes(v1)
	uploadHandler.RegisterRoutes(v1)
	favoritesHandler.RegisterRoutes(v1)
	contactHandler.RegisterRoutes(v1)
	profileHandler.RegisterRoutes(v1)

	router.Run(appConfig.WebHost + ":" + appConfig.WebPort)
}
