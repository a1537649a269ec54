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

type UploadHandlerI interface {
	RegisterRoutes(group *gin.RouterGroup)
	UploadImages(ctx *gin.Context)
}

type UploadHandler struct {
	uploadService service.UploadServiceI
	middlewares   middlewares.MiddlewaresI
}

func NewUploadHandler(uploadService service.UploadServiceI, middlewares middlewares.MiddlewaresI) UploadHandlerI {
	return &UploadHandler{
		uploadService: uploadService,
		middlewares:   middlewares,
	}
}

func (h *UploadHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.POST("/uploads", h.middlewares.ValidUser(), h.UploadImages)
}

// UploadImages accepts a multipart batch under the "images" field and
// returns the public URLs of everything that made it into the bucket.
// A failed file aborts the rest of the batch.
func (h *UploadHandler) UploadImages(ctx *gin.Context) {
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

	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid form",
		})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "no files",
		})
		return
	}

	urls, err := h.uploadService.UploadImages(user.UUID, files)
	if errors.Is(err, customerror.ErrInvalidFileType) {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body": gin.H{
				"urls": urls,
			},
			"error": "invalid file type",
		})
		return
	}
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body": gin.H{
				"urls": urls,
			},
			"error": "Internal Server Error",
		})
		log.Print(err.Error())
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"body": gin.H{
			"urls": urls,
		},
		"error": nil,
	})
}
