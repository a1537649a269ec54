package handler

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/alzin/sham-al-aqar-syria/pkg/customerror"
	modelsProperty "github.com/alzin/sham-al-aqar-syria/pkg/property"
	modelsUser "github.com/alzin/sham-al-aqar-syria/pkg/user"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// envelope mirrors the JSON wrapper every endpoint responds with.
type envelope struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
	Error  *string         `json:"error"`
}

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) envelope {
	t.Helper()
	require.Equal(t, 200, recorder.Code)
	var response envelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	return response
}

type fakePropertyService struct {
	listings      map[uuid.UUID]*modelsProperty.Property
	insertCalls   int
	lastInserted  *modelsProperty.Property
	searchResults []modelsProperty.Property
}

func newFakePropertyService() *fakePropertyService {
	return &fakePropertyService{listings: map[uuid.UUID]*modelsProperty.Property{}}
}

func (s *fakePropertyService) Search(filters modelsProperty.Filters, order string) ([]modelsProperty.Property, error) {
	return modelsProperty.SortResults(modelsProperty.Apply(s.searchResults, filters), order), nil
}

func (s *fakePropertyService) GetProperty(id uuid.UUID) (*modelsProperty.Property, error) {
	listing, ok := s.listings[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return listing, nil
}

func (s *fakePropertyService) GetPropertiesByOwner(userId uuid.UUID) ([]modelsProperty.Property, error) {
	properties := []modelsProperty.Property{}
	for _, listing := range s.listings {
		if listing.UserId == userId {
			properties = append(properties, *listing)
		}
	}
	return properties, nil
}

func (s *fakePropertyService) InsertProperty(listing *modelsProperty.Property) (uuid.UUID, error) {
	s.insertCalls++
	s.lastInserted = listing
	listing.Id = uuid.New()
	s.listings[listing.Id] = listing
	return listing.Id, nil
}

func (s *fakePropertyService) UpdateProperty(listing *modelsProperty.Property) error {
	if _, ok := s.listings[listing.Id]; !ok {
		return pgx.ErrNoRows
	}
	s.listings[listing.Id] = listing
	return nil
}

func (s *fakePropertyService) DeleteProperty(id uuid.UUID, ownerId uuid.UUID) error {
	listing, ok := s.listings[id]
	if !ok || listing.UserId != ownerId {
		return pgx.ErrNoRows
	}
	delete(s.listings, id)
	return nil
}

type fakeFavoritesService struct {
	toggleCalls int
	state       bool
}

func (s *fakeFavoritesService) GetFavorites(userId uuid.UUID) ([]modelsProperty.Property, error) {
	return []modelsProperty.Property{}, nil
}

func (s *fakeFavoritesService) IsFavorite(userId uuid.UUID, propertyId uuid.UUID) (bool, error) {
	return s.state, nil
}

func (s *fakeFavoritesService) Toggle(userId uuid.UUID, propertyId uuid.UUID) (bool, error) {
	s.toggleCalls++
	s.state = !s.state
	return s.state, nil
}

// fakeJWTService accepts exactly one token and rejects everything else.
type fakeJWTService struct {
	token string
	user  *modelsUser.User
}

func (s *fakeJWTService) GenerateToken(user *modelsUser.User, isAccess bool) (string, error) {
	return s.token, nil
}

func (s *fakeJWTService) ValidateToken(token string) (*modelsUser.User, error) {
	if s.user != nil && token == s.token {
		return s.user, nil
	}
	return nil, customerror.ErrJwtInvalid
}

// stubMiddlewares bypasses token checks and plants a fixed user, for
// tests that target handler behavior rather than authentication.
type stubMiddlewares struct {
	user    *modelsUser.User
	listing *modelsProperty.Property
}

func (m *stubMiddlewares) ValidUser() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("user", m.user)
		ctx.Next()
	}
}

func (m *stubMiddlewares) MyProperty() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.Set("property", m.listing)
		ctx.Next()
	}
}

func newTestRouter() (*gin.Engine, *gin.RouterGroup) {
	router := gin.New()
	return router, router.Group("/api/v1")
}
