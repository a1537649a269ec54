package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	modelsProperty "github.com/alzin/sham-al-aqar-syria/pkg/property"
	modelsUser "github.com/alzin/sham-al-aqar-syria/pkg/user"
)

func validPropertyBody() map[string]any {
	return map[string]any{
		"title":         "شقة مفروشة للإيجار",
		"description":   "",
		"property_type": modelsProperty.TypeApartment,
		"status":        modelsProperty.StatusRent,
		"price":         55000,
		"area":          150,
		"bedrooms":      3,
		"location":      "شارع الثورة",
		"city":          "دمشق",
		"images":        []string{"http://localhost:8080/media/property_images/u/1.jpg"},
	}
}

func postProperty(t *testing.T, router http.Handler, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()
	payload, err := json.Marshal(body)
	require.NoError(t, err)
	request := httptest.NewRequest(http.MethodPost, "/api/v1/properties/", bytes.NewReader(payload))
	request.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestInsertPropertyRejectsEmptyImages(t *testing.T) {
	propertyService := newFakePropertyService()
	stub := &stubMiddlewares{user: &modelsUser.User{UUID: uuid.New()}}
	router, group := newTestRouter()
	NewPropertyHandler(propertyService, stub).RegisterRoutes(group)

	body := validPropertyBody()
	body["images"] = []string{}
	response := decodeEnvelope(t, postProperty(t, router, body))

	assert.Equal(t, http.StatusBadRequest, response.Status)
	require.NotNil(t, response.Error)
	assert.Equal(t, "at least one image is required", *response.Error)
	assert.Zero(t, propertyService.insertCalls)
}

func TestInsertPropertyStampsOwner(t *testing.T) {
	propertyService := newFakePropertyService()
	owner := &modelsUser.User{UUID: uuid.New()}
	stub := &stubMiddlewares{user: owner}
	router, group := newTestRouter()
	NewPropertyHandler(propertyService, stub).RegisterRoutes(group)

	response := decodeEnvelope(t, postProperty(t, router, validPropertyBody()))

	assert.Equal(t, http.StatusOK, response.Status)
	assert.Nil(t, response.Error)
	require.Equal(t, 1, propertyService.insertCalls)
	assert.Equal(t, owner.UUID, propertyService.lastInserted.UserId)

	var body struct {
		Id uuid.UUID `json:"id"`
	}
	require.NoError(t, json.Unmarshal(response.Body, &body))
	assert.NotEqual(t, uuid.Nil, body.Id)
}

func TestInsertPropertyRejectsInvalidType(t *testing.T) {
	propertyService := newFakePropertyService()
	stub := &stubMiddlewares{user: &modelsUser.User{UUID: uuid.New()}}
	router, group := newTestRouter()
	NewPropertyHandler(propertyService, stub).RegisterRoutes(group)

	body := validPropertyBody()
	body["property_type"] = "castle"
	response := decodeEnvelope(t, postProperty(t, router, body))

	assert.Equal(t, http.StatusBadRequest, response.Status)
	require.NotNil(t, response.Error)
	assert.Equal(t, "invalid property type", *response.Error)
	assert.Zero(t, propertyService.insertCalls)
}

func TestSearchPropertiesAppliesQueryFilters(t *testing.T) {
	propertyService := newFakePropertyService()
	propertyService.searchResults = modelsProperty.Fallback()
	stub := &stubMiddlewares{}
	router, group := newTestRouter()
	NewPropertyHandler(propertyService, stub).RegisterRoutes(group)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/properties/?type=villa&status=sale&sort=price-asc", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	response := decodeEnvelope(t, recorder)
	assert.Equal(t, http.StatusOK, response.Status)

	var body struct {
		Properties []modelsProperty.Property `json:"properties"`
		Count      int                       `json:"count"`
	}
	require.NoError(t, json.Unmarshal(response.Body, &body))
	require.Equal(t, 3, body.Count)
	for i, listing := range body.Properties {
		assert.Equal(t, modelsProperty.TypeVilla, listing.PropertyType)
		if i > 0 {
			assert.GreaterOrEqual(t, listing.Price, body.Properties[i-1].Price)
		}
	}
}

func TestGetPropertyNotFound(t *testing.T) {
	propertyService := newFakePropertyService()
	stub := &stubMiddlewares{}
	router, group := newTestRouter()
	NewPropertyHandler(propertyService, stub).RegisterRoutes(group)

	request := httptest.NewRequest(http.MethodGet, "/api/v1/properties/"+uuid.New().String(), nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	response := decodeEnvelope(t, recorder)
	assert.Equal(t, http.StatusNotFound, response.Status)
	require.NotNil(t, response.Error)
	assert.Equal(t, "property not found", *response.Error)
}
