package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"eventnomous/internal/database"
	"eventnomous/internal/domain"
	"eventnomous/internal/middleware"
	"eventnomous/internal/modules/auth"
	"eventnomous/internal/modules/catalog"
	"eventnomous/internal/modules/dashboard"
	"eventnomous/internal/modules/planner"
	"eventnomous/internal/pkg/clock"
	jwtsvc "eventnomous/internal/pkg/jwt"
	"eventnomous/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
	Message string                 `json:"message,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type E2ETestSuite struct {
	router *gin.Engine
}

func setupTestSuite(t *testing.T) *E2ETestSuite {
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err, "Failed to connect to test database")

	userRepo := repository.NewUserRepository(db)
	vendorRepo := repository.NewVendorRepository(db)
	require.NoError(t, userRepo.Migrate())
	require.NoError(t, vendorRepo.Migrate())

	seedVendors(t, vendorRepo)

	draftRepo := repository.NewMemoryDraftRepository()
	j := jwtsvc.New("e2e-test-secret", 1*time.Hour)

	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	catalogService := catalog.NewService(vendorRepo)
	catalogHandler := catalog.NewHandler(catalogService)

	plannerService := planner.NewService(draftRepo, catalogService, nil, clock.NewSystem())
	plannerHandler := planner.NewHandler(plannerService)

	dashboardHandler := dashboard.NewHandler()

	r := gin.New()
	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)
		catalogHandler.RegisterRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			plannerHandler.RegisterRoutes(protected)
			dashboardHandler.RegisterRoutes(protected)
		}
	}

	return &E2ETestSuite{router: r}
}

func seedVendors(t *testing.T, repo *repository.VendorRepository) {
	t.Helper()

	vendors := []domain.Vendor{
		{
			ID:       "v1",
			Name:     "Grand Royal Palace",
			Category: domain.CategoryVenue,
			Location: "Udaipur, Rajasthan",
			Rating:   4.9,
			Position: 1,
			Services: []domain.VendorService{
				{ID: "s1", Name: "Grand Hall Rental", Price: 500000, Unit: domain.UnitPerDay, Position: 1},
			},
		},
		{
			ID:       "v3",
			Name:     "Delight Catering",
			Category: domain.CategoryCatering,
			Location: "Bangalore, Karnataka",
			Rating:   4.5,
			Position: 2,
			Services: []domain.VendorService{
				{ID: "s3", Name: "Gold Buffet", Price: 1200, Unit: domain.UnitPerPlate, Position: 1},
			},
		},
	}
	ctx := context.Background()
	for i := range vendors {
		require.NoError(t, repo.Create(ctx, &vendors[i]))
	}
}

func (s *E2ETestSuite) request(t *testing.T, method, path, token string, body any) (*httptest.ResponseRecorder, TestResponse) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var resp TestResponse
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func (s *E2ETestSuite) registerAndLogin(t *testing.T, email, role string) string {
	t.Helper()

	w, _ := s.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    email,
		"password": "secret123",
		"name":     "E2E User",
		"role":     role,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, resp := s.request(t, http.MethodPost, "/api/v1/auth/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	token, ok := resp.Data["token"].(string)
	require.True(t, ok, "login must return a token")
	return token
}

func TestE2E_RegisterLoginAndMe(t *testing.T) {
	s := setupTestSuite(t)

	token := s.registerAndLogin(t, "priya@gmail.com", "CUSTOMER")

	w, resp := s.request(t, http.MethodGet, "/api/v1/users/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	user := resp.Data["user"].(map[string]interface{})
	assert.Equal(t, "priya@gmail.com", user["email"])
	assert.Equal(t, "CUSTOMER", user["role"])
}

func TestE2E_RegisterDuplicateEmail(t *testing.T) {
	s := setupTestSuite(t)
	s.registerAndLogin(t, "taken@gmail.com", "CUSTOMER")

	w, resp := s.request(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"email":    "taken@gmail.com",
		"password": "secret123",
		"name":     "Second Try",
		"role":     "CUSTOMER",
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMAIL_EXISTS", resp.Error.Code)
}

func TestE2E_CatalogBrowsing(t *testing.T) {
	s := setupTestSuite(t)

	// listing is public and keeps insertion order
	w, resp := s.request(t, http.MethodGet, "/api/v1/vendors", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	vendors := resp.Data["vendors"].([]interface{})
	require.Len(t, vendors, 2)
	first := vendors[0].(map[string]interface{})
	assert.Equal(t, "v1", first["id"])
	assert.Equal(t, 500000.0, first["min_price"])

	// category filter
	w, resp = s.request(t, http.MethodGet, "/api/v1/vendors?category=CATERING", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	vendors = resp.Data["vendors"].([]interface{})
	require.Len(t, vendors, 1)
	assert.Equal(t, "Delight Catering", vendors[0].(map[string]interface{})["name"])

	// search filter
	w, resp = s.request(t, http.MethodGet, "/api/v1/vendors?search=palace", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	vendors = resp.Data["vendors"].([]interface{})
	require.Len(t, vendors, 1)

	// vendor detail and miss
	w, _ = s.request(t, http.MethodGet, "/api/v1/vendors/v3", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp = s.request(t, http.MethodGet, "/api/v1/vendors/v999", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestE2E_DraftEventLifecycle(t *testing.T) {
	s := setupTestSuite(t)
	token := s.registerAndLogin(t, "planner@gmail.com", "CUSTOMER")

	// draft endpoints require auth
	w, _ := s.request(t, http.MethodPost, "/api/v1/events/draft", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// no draft yet
	w, resp := s.request(t, http.MethodGet, "/api/v1/events/draft", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "NO_ACTIVE_DRAFT", resp.Error.Code)

	// start a draft with a budget
	w, resp = s.request(t, http.MethodPost, "/api/v1/events/draft", token, gin.H{"budget": 10000})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, false, resp.Data["replaced"])
	draft := resp.Data["draft"].(map[string]interface{})
	assert.Equal(t, "Wedding", draft["type"])

	// attach the catering service
	w, _ = s.request(t, http.MethodPost, "/api/v1/events/draft/services", token, gin.H{
		"vendor_id":  "v3",
		"service_id": "s3",
	})
	require.Equal(t, http.StatusOK, w.Code)

	// derived figures
	w, resp = s.request(t, http.MethodGet, "/api/v1/events/draft/budget", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	budget := resp.Data["budget"].(map[string]interface{})
	assert.Equal(t, 1200.0, budget["total_spent"])
	assert.Equal(t, 8800.0, budget["remaining"])
	assert.Equal(t, 12.0, budget["percentage_spent"])
	assert.Equal(t, false, budget["is_over_budget"])

	// starting again replaces the draft and empties the line items
	w, resp = s.request(t, http.MethodPost, "/api/v1/events/draft", token, gin.H{"budget": 5000})
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, true, resp.Data["replaced"])
	draft = resp.Data["draft"].(map[string]interface{})
	assert.Empty(t, draft["selected_services"])

	// delete and verify gone
	w, _ = s.request(t, http.MethodDelete, "/api/v1/events/draft", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = s.request(t, http.MethodGet, "/api/v1/events/draft", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestE2E_DraftsIsolatedBetweenUsers(t *testing.T) {
	s := setupTestSuite(t)
	alice := s.registerAndLogin(t, "alice@gmail.com", "CUSTOMER")
	bob := s.registerAndLogin(t, "bob@gmail.com", "CUSTOMER")

	w, _ := s.request(t, http.MethodPost, "/api/v1/events/draft", alice, gin.H{"budget": 1000})
	require.Equal(t, http.StatusCreated, w.Code)

	w, _ = s.request(t, http.MethodGet, "/api/v1/events/draft", bob, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestE2E_DashboardNavigationPerRole(t *testing.T) {
	s := setupTestSuite(t)

	cases := []struct {
		role      string
		firstPath string
	}{
		{"CUSTOMER", "/dashboard/customer"},
		{"MANAGER", "/dashboard/manager"},
		{"VENDOR", "/dashboard/vendor"},
		{"ADMIN", "/dashboard/admin"},
	}

	for i, tc := range cases {
		token := s.registerAndLogin(t, fmt.Sprintf("nav%d@gmail.com", i), tc.role)

		w, resp := s.request(t, http.MethodGet, "/api/v1/dashboard/navigation", token, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tc.role, resp.Data["role"])

		nav := resp.Data["navigation"].([]interface{})
		require.NotEmpty(t, nav)
		assert.Equal(t, tc.firstPath, nav[0].(map[string]interface{})["path"])
	}
}
