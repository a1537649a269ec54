package handler

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alzin/sham-al-aqar-syria/internal/middlewares"
	"github.com/alzin/sham-al-aqar-syria/internal/service"
	modelsProperty "github.com/alzin/sham-al-aqar-syria/pkg/property"
	modelsUser "github.com/alzin/sham-al-aqar-syria/pkg/user"
)

type PropertyHandlerI interface {
	RegisterRoutes(group *gin.RouterGroup)
	SearchProperties(ctx *gin.Context)
	GetProperty(ctx *gin.Context)
	InsertProperty(ctx *gin.Context)
	UpdateProperty(ctx *gin.Context)
	DeleteProperty(ctx *gin.Context)
	MyProperties(ctx *gin.Context)
}

type PropertyHandler struct {
	propertyService service.PropertyServiceI
	middlewares     middlewares.MiddlewaresI
}

func NewPropertyHandler(propertyService service.PropertyServiceI, middlewares middlewares.MiddlewaresI) PropertyHandlerI {
	return &PropertyHandler{
		propertyService: propertyService,
		middlewares:     middlewares,
	}
}

func (h *PropertyHandler) RegisterRoutes(group *gin.RouterGroup) {
	propertyGroup := group.Group("/properties")
	propertyGroup.GET("/", h.SearchProperties)
	propertyGroup.GET("/:id", h.GetProperty)
	propertyGroup.POST("/", h.middlewares.ValidUser(), h.InsertProperty)
	propertyGroup.PATCH("/:id", h.middlewares.ValidUser(), h.middlewares.MyProperty(), h.UpdateProperty)
	propertyGroup.DELETE("/:id", h.middlewares.ValidUser(), h.middlewares.MyProperty(), h.DeleteProperty)
	group.GET("/my-properties", h.middlewares.ValidUser(), h.MyProperties)
}

// SearchProperties seeds the filter state from the query string, the
// same parameters the listings page carries in its URL.
func (h *PropertyHandler) SearchProperties(ctx *gin.Context) {
	filters := modelsProperty.DefaultFilters()
	filters.Keyword = ctx.DefaultQuery("keyword", "")
	filters.Type = ctx.DefaultQuery("type", modelsProperty.All)
	filters.Status = ctx.DefaultQuery("status", modelsProperty.All)
	filters.City = ctx.DefaultQuery("city", modelsProperty.All)
	filters.Bedrooms = ctx.DefaultQuery("bedrooms", modelsProperty.All)
	minPrice := ctx.DefaultQuery("min_price", "")
	if minPrice != "" {
		parsed, err := strconv.ParseFloat(minPrice, 64)
		if err == nil {
			filters.MinPrice = parsed
		}
	}
	maxPrice := ctx.DefaultQuery("max_price", "")
	if maxPrice != "" {
		parsed, err := strconv.ParseFloat(maxPrice, 64)
		if err == nil {
			filters.MaxPrice = parsed
		}
	}
	order := ctx.DefaultQuery("sort", modelsProperty.SortNewest)

	properties, err := h.propertyService.Search(filters, order)
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
			"properties": properties,
			"count":      len(properties),
		},
		"error": nil,
	})
}

func (h *PropertyHandler) GetProperty(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid id",
		})
		return
	}
	listing, err := h.propertyService.GetProperty(id)
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
	ctx.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"body": gin.H{
			"property": listing,
		},
		"error": nil,
	})
}

type PropertyRequest struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	PropertyType string   `json:"property_type"`
	Status       string   `json:"status"`
	Price        float64  `json:"price"`
	Currency     string   `json:"currency"`
	Area         float64  `json:"area"`
	Bedrooms     *int32   `json:"bedrooms"`
	Bathrooms    *int32   `json:"bathrooms"`
	Location     string   `json:"location"`
	City         string   `json:"city"`
	Images       []string `json:"images"`
}

// validate runs the same required-field checks the submit form did;
// nothing reaches the service layer until they pass.
func (request *PropertyRequest) validate() string {
	if request.Title == "" {
		return "title is required"
	}
	if !modelsProperty.ValidType(request.PropertyType) {
		return "invalid property type"
	}
	if !modelsProperty.ValidStatus(request.Status) {
		return "invalid status"
	}
	if request.Price <= 0 {
		return "price must be positive"
	}
	if request.Area <= 0 {
		return "area must be positive"
	}
	if request.City == "" {
		return "city is required"
	}
	if request.Location == "" {
		return "location is required"
	}
	if len(request.Images) == 0 {
		return "at least one image is required"
	}
	return ""
}

func (request *PropertyRequest) toProperty() *modelsProperty.Property {
	return &modelsProperty.Property{
		Title:        request.Title,
		Description:  request.Description,
		PropertyType: request.PropertyType,
		Status:       request.Status,
		Price:        request.Price,
		Currency:     request.Currency,
		Area:         request.Area,
		Bedrooms:     request.Bedrooms,
		Bathrooms:    request.Bathrooms,
		Location:     request.Location,
		City:         request.City,
		Images:       request.Images,
	}
}

func (h *PropertyHandler) InsertProperty(ctx *gin.Context) {
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

	var request PropertyRequest
	if err := ctx.ShouldBindBodyWithJSON(&request); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	if message := request.validate(); message != "" {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  message,
		})
		return
	}
	listing := request.toProperty()
	listing.UserId = user.UUID
	id, err := h.propertyService.InsertProperty(listing)
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
			"id": id,
		},
		"error": nil,
	})
}

func (h *PropertyHandler) UpdateProperty(ctx *gin.Context) {
	listingInt, exists := ctx.Get("property")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print("property not found")
		return
	}
	listing := listingInt.(*modelsProperty.Property)

	var request PropertyRequest
	if err := ctx.ShouldBindBodyWithJSON(&request); err != nil {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  "invalid data",
		})
		return
	}
	if message := request.validate(); message != "" {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusBadRequest,
			"body":   gin.H{},
			"error":  message,
		})
		return
	}
	updated := request.toProperty()
	updated.Id = listing.Id
	updated.UserId = listing.UserId
	updated.CreatedAt = listing.CreatedAt
	err := h.propertyService.UpdateProperty(updated)
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
	ctx.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"body":   gin.H{},
		"error":  nil,
	})
}

func (h *PropertyHandler) DeleteProperty(ctx *gin.Context) {
	listingInt, exists := ctx.Get("property")
	if !exists {
		ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
			"status": http.StatusInternalServerError,
			"body":   gin.H{},
			"error":  "Internal Server Error",
		})
		log.Print("property not found")
		return
	}
	listing := listingInt.(*modelsProperty.Property)

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

	err := h.propertyService.DeleteProperty(listing.Id, user.UUID)
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
	ctx.JSON(http.StatusOK, gin.H{
		"status": http.StatusOK,
		"body":   gin.H{},
		"error":  nil,
	})
}

func (h *PropertyHandler) MyProperties(ctx *gin.Context) {
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

	properties, err := h.propertyService.GetPropertiesByOwner(user.UUID)
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
			"properties": properties,
		},
		"error": nil,
	})
}
