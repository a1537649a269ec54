package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alzin/sham-al-aqar-syria/internal/middlewares"
	"github.com/alzin/sham-al-aqar-syria/internal/service"
	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
	modelsUser "github.com/alzin/sham-al-aqar-syria/pkg/user"
)

type AuthHandlerI interface {
	RegisterRoutes(group *gin.RouterGroup)
	SignUp(ctx *gin.Context)
	SignIn(ctx *gin.Context)
	SignOut(ctx *gin.Context)
}

type AuthHandler struct {
	authService service.AuthServiceI
	jwtService  service.JWTServiceI
	middlewares middlewares.MiddlewaresI
}

func NewAuthHandler(authService service.AuthServiceI, jwtService service.JWTServiceI, middlewares middlewares.MiddlewaresI) AuthHandlerI {
	return &AuthHandler{
		authService: authService,
		jwtService:  jwtService,
		middlewares: middlewares,
	}
}

func (h *AuthHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/sign-up", h.SignUp)
	group.POST("/sign-in", h.SignIn)
	group.POST("/sign-out", h.middlewares.ValidUser(), h.SignOut)
}

type SignUpRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password"`
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Phone           string `json:"phone"`
}

func (h *AuthHandler) SignUp(ctx *gin.Context) {
	var request SignUpRequest
	if err := ctx.ShouldBindBodyWithJSON(&request); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	if request.ConfirmPassword != "" && request.ConfirmPassword != request.Password {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "passwords do not match",
		})
		return
	}
	user, err := h.authService.SignUp(request.Email, request.Password, request.FirstName, request.LastName, request.Phone)
	if errors.Is(err, customerror.ErrUserAlreadyExists) {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusConflict,
			"body":   gin.H{},
			"error":  "user already exists",
		})
		return
	}
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	h.respondWithTokens(ctx, user)
}

type SignInRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) SignIn(ctx *gin.Context) {
	var request SignInRequest
	if err := ctx.ShouldBindBodyWithJSON(&request); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	user, err := h.authService.SignIn(request.Email, request.Password)
	if errors.Is(err, customerror.ErrWrongCredentials) {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusUnauthorized,
			"body":   gin.H{},
			"error":  "wrong credentials",
		})
		return
	}
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	h.respondWithTokens(ctx, user)
}

func (h *AuthHandler) SignOut(ctx *gin.Context) {
	userInt, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print("user not found")
		return
	}
	user := userInt.(*modelsUser.User)
	if err := h.authService.SignOut(user.UUID); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"body":   gin.H{},
		"error":  nil,
	})
}

func (h *AuthHandler) respondWithTokens(ctx *gin.Context, user *modelsUser.User) {
	accessToken, err := h.jwtService.GenerateToken(user, true)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	refreshToken, err := h.jwtService.GenerateToken(user, false)
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"body": gin.H{
			"user":          user,
			"access_token":  accessToken,
			"refresh_token": refreshToken,
		},
		"error": nil,
	})
}
