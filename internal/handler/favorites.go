package handler

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alzin/sham-al-aqar-syria/internal/middlewares"
	"github.com/alzin/sham-al-aqar-syria/internal/service"
	modelsUser "github.com/alzin/sham-al-aqar-syria/pkg/user"
)

type FavoritesHandlerI interface {
	RegisterRoutes(group *gin.RouterGroup)
	GetFavorites(ctx *gin.Context)
	GetFavoriteStatus(ctx *gin.Context)
	ToggleFavorite(ctx *gin.Context)
}

type FavoritesHandler struct {
	favoritesService service.FavoritesServiceI
	propertyService  service.PropertyServiceI
	middlewares      middlewares.MiddlewaresI
}

func NewFavoritesHandler(favoritesService service.FavoritesServiceI, propertyService service.PropertyServiceI, middlewares middlewares.MiddlewaresI) FavoritesHandlerI {
	return &FavoritesHandler{
		favoritesService: favoritesService,
		propertyService:  propertyService,
		middlewares:      middlewares,
	}
}

func (h *FavoritesHandler) RegisterRoutes(group *gin.RouterGroup) {
	group.GET("/favorites", h.middlewares.ValidUser(), h.GetFavorites)
	group.GET("/properties/:id/favorite", h.middlewares.ValidUser(), h.GetFavoriteStatus)
	group.POST("/properties/:id/favorite", h.middlewares.ValidUser(), h.ToggleFavorite)
}

func (h *FavoritesHandler) GetFavorites(ctx *gin.Context) {
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

	favorites, err := h.favoritesService.GetFavorites(user.UUID)
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
			"favorites": favorites,
		},
		"error": nil,
	})
}

func (h *FavoritesHandler) GetFavoriteStatus(ctx *gin.Context) {
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

	propertyId, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid id",
		})
		return
	}
	favorite, err := h.favoritesService.IsFavorite(user.UUID, propertyId)
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
			"is_favorite": favorite,
		},
		"error": nil,
	})
}

func (h *FavoritesHandler) ToggleFavorite(ctx *gin.Context) {
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

	propertyId, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid id",
		})
		return
	}
	_, err = h.propertyService.GetProperty(propertyId)
	if err == pgx.ErrNoRows {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusNotFound,
			"body":   gin.H{},
			"error":  "property not found",
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

	favorite, err := h.favoritesService.Toggle(user.UUID, propertyId)
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
			"is_favorite": favorite,
		},
		"error": nil,
	})
}
