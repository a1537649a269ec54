package middlewares

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/alzin/sham-al-aqar-syria/internal/service"
	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
	modelsUser "github.com/alzin/sham-al-aqar-syria/pkg/user"
)

type MiddlewaresI interface {
	ValidUser() gin.HandlerFunc
	MyProperty() gin.HandlerFunc
}

type Middlewares struct {
	jwtService      service.JWTServiceI
	propertyService service.PropertyServiceI
	host            string
	port            string
}

func NewMiddlewares(jwtService service.JWTServiceI, propertyService service.PropertyServiceI, host string, port string) MiddlewaresI {
	return &Middlewares{
		jwtService:      jwtService,
		propertyService: propertyService,
		host:            host,
		port:            port,
	}
}

// ValidUser resolves the Authorization header to a user and stores it
// on the context. Requests without a valid token never reach the
// database-touching handlers.
func (middlewares *Middlewares) ValidUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authHeader := ctx.GetHeader("Authorization")
		user, err := middlewares.jwtService.ValidateToken(authHeader)
		if errors.Is(err, jwt.ErrTokenExpired) {
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusUnauthorized,
				"body":   gin.H{},
				"error":  "token expired",
			})
			return
		}
		if err == customerror.ErrJwtInvalid || err == customerror.ErrJwtVersionIncorrect || err == pgx.ErrNoRows {
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusUnauthorized,
				"body":   gin.H{},
				"error":  "login required",
			})
			return
		}
		if err != nil {
			customErr := err.(customerror.CustomError)
			customErr.AppendModule("Middlewares")
			log.Print(customErr.Error())
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusInternalServerError,
				"body":   gin.H{},
				"error":  "Internal Server Error",
			})
			return
		}
		ctx.Set("user", user)
		ctx.Next()
	}
}

// MyProperty fetches the listing from the id param and lets only its
// owner continue; the fetched row is stashed for the handler.
func (middlewares *Middlewares) MyProperty() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		authUser, exists := ctx.Get("user")
		if !exists {
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusInternalServerError,
				"body":   gin.H{},
				"error":  "Internal Server Error",
			})
			return
		}
		user := authUser.(*modelsUser.User)

		propertyId, err := uuid.Parse(ctx.Param("id"))
		if err != nil {
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusBadRequest,
				"body":   gin.H{},
				"error":  "invalid id",
			})
			return
		}
		listing, err := middlewares.propertyService.GetProperty(propertyId)
		if err == pgx.ErrNoRows {
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusNotFound,
				"body":   gin.H{},
				"error":  "property not found",
			})
			return
		}
		if err != nil {
			customErr := err.(customerror.CustomError)
			customErr.AppendModule("Middlewares")
			log.Print(customErr.Error())
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusInternalServerError,
				"body":   gin.H{},
				"error":  "Internal Server Error",
			})
			return
		}
		if listing.UserId != user.UUID {
			ctx.AbortWithStatusJSON(http.StatusOK, gin.H{
				"status": http.StatusForbidden,
				"body":   gin.H{},
				"error":  "Forbidden",
			})
			return
		}
		ctx.Set("property", listing)
		ctx.Next()
	}
}
