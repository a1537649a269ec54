package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alzin/sham-al-aqar-syria/internal/middlewares"
	modelsProperty "github.com/alzin/sham-al-aqar-syria/pkg/property"
	modelsUser "github.com/alzin/sham-al-aqar-syria/pkg/user"
)

func newFavoritesRouter(propertyService *fakePropertyService, favoritesService *fakeFavoritesService, jwtService *fakeJWTService) http.Handler {
	router, group := newTestRouter()
	authMiddlewares := middlewares.NewMiddlewares(jwtService, propertyService, "localhost", "8080")
	NewFavoritesHandler(favoritesService, propertyService, authMiddlewares).RegisterRoutes(group)
	return router
}

func TestToggleFavoriteRequiresLogin(t *testing.T) {
	propertyService := newFakePropertyService()
	favoritesService := &fakeFavoritesService{}
	jwtService := &fakeJWTService{}
	router := newFavoritesRouter(propertyService, favoritesService, jwtService)

	for _, header := range []string{"", "Bearer garbage"} {
		request := httptest.NewRequest(http.MethodPost, "/api/v1/properties/"+uuid.New().String()+"/favorite", nil)
		if header != "" {
			request.Header.Set("Authorization", header)
		}
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		response := decodeEnvelope(t, recorder)
		assert.Equal(t, http.StatusUnauthorized, response.Status)
		require.NotNil(t, response.Error)
		assert.Equal(t, "login required", *response.Error)
	}
	assert.Zero(t, favoritesService.toggleCalls)
}

func TestToggleFavoriteFlipsForAuthenticatedUser(t *testing.T) {
	propertyService := newFakePropertyService()
	listingId := uuid.New()
	propertyService.listings[listingId] = &modelsProperty.Property{Id: listingId}

	favoritesService := &fakeFavoritesService{}
	jwtService := &fakeJWTService{
		token: "valid-token",
		user:  &modelsUser.User{UUID: uuid.New()},
	}
	router := newFavoritesRouter(propertyService, favoritesService, jwtService)

	toggle := func() envelope {
		request := httptest.NewRequest(http.MethodPost, "/api/v1/properties/"+listingId.String()+"/favorite", nil)
		request.Header.Set("Authorization", "valid-token")
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)
		return decodeEnvelope(t, recorder)
	}

	var body struct {
		IsFavorite bool `json:"is_favorite"`
	}

	response := toggle()
	assert.Equal(t, http.StatusOK, response.Status)
	require.NoError(t, json.Unmarshal(response.Body, &body))
	assert.True(t, body.IsFavorite)

	response = toggle()
	require.NoError(t, json.Unmarshal(response.Body, &body))
	assert.False(t, body.IsFavorite)

	assert.Equal(t, 2, favoritesService.toggleCalls)
}

func TestToggleFavoriteUnknownProperty(t *testing.T) {
	propertyService := newFakePropertyService()
	favoritesService := &fakeFavoritesService{}
	jwtService := &fakeJWTService{
		token: "valid-token",
		user:  &modelsUser.User{UUID: uuid.New()},
	}
	router := newFavoritesRouter(propertyService, favoritesService, jwtService)

	request := httptest.NewRequest(http.MethodPost, "/api/v1/properties/"+uuid.New().String()+"/favorite", nil)
	request.Header.Set("Authorization", "valid-token")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	response := decodeEnvelope(t, recorder)
	assert.Equal(t, http.StatusNotFound, response.Status)
	require.NotNil(t, response.Error)
	assert.Equal(t, "property not found", *response.Error)
	assert.Zero(t, favoritesService.toggleCalls)
}
