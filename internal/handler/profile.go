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

type ProfileHandlerI interface {
	RegisterRoutes(group *gin.RouterGroup)
	GetProfile(ctx *gin.Context)
	UpdateProfile(ctx *gin.Context)
	UploadAvatar(ctx *gin.Context)
}

type ProfileHandler struct {
	userService service.UserServiceI
	middlewares middlewares.MiddlewaresI
}

func NewProfileHandler(userService service.UserServiceI, middlewares middlewares.MiddlewaresI) ProfileHandlerI {
	return &ProfileHandler{
		userService: userService,
		middlewares: middlewares,
	}
}

func (h *ProfileHandler) RegisterRoutes(group *gin.RouterGroup) {
	profileGroup := group.Group("/profile")
	profileGroup.Use(h.middlewares.ValidUser())
	profileGroup.GET("/", h.GetProfile)
	profileGroup.PATCH("/", h.UpdateProfile)
	profileGroup.POST("/avatar", h.UploadAvatar)
}

func (h *ProfileHandler) GetProfile(ctx *gin.Context) {
	userInt, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		return
	}
	user := userInt.(*modelsUser.User)
	ctx.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"body": gin.H{
			"user": user,
		},
		"error": nil,
	})
}

type UpdateProfileRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	PhoneText string `json:"phone_text"`
}

func (h *ProfileHandler) UpdateProfile(ctx *gin.Context) {
	userInt, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		return
	}
	user := userInt.(*modelsUser.User)

	var request UpdateProfileRequest
	if err := ctx.ShouldBindBodyWithJSON(&request); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	profile := user.Profile
	profile.FirstName = request.FirstName
	profile.LastName = request.LastName
	profile.PhoneText = request.PhoneText
	if err := h.userService.UpdateProfile(user.UUID, &profile); err != nil {
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
			"profile": profile,
		},
		"error": nil,
	})
}

func (h *ProfileHandler) UploadAvatar(ctx *gin.Context) {
	userInt, exists := ctx.Get("user")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		return
	}
	user := userInt.(*modelsUser.User)

	file, err := ctx.FormFile("file")
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid file",
		})
		return
	}
	url, err := h.userService.SaveAvatar(user, file)
	if errors.Is(err, customerror.ErrInvalidFileType) {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid file type",
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
	ctx.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"body": gin.H{
			"avatar_url": url,
		},
		"error": nil,
	})
}
