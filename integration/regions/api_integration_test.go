package regions_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/nzwalks-api/api"
	"github.com/killallgit/nzwalks-api/api/regions"
	"github.com/killallgit/nzwalks-api/api/types"
	"github.com/killallgit/nzwalks-api/internal/database"
	regionsvc "github.com/killallgit/nzwalks-api/internal/services/regions"
	"github.com/killallgit/nzwalks-api/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type IntegrationTestSuite struct {
	t      *testing.T
	conn   database.Conn
	router *gin.Engine
}

func openBackends(t *testing.T) map[string]database.Conn {
	t.Helper()

	gormDB, err := database.Initialize(":memory:", false)
	require.NoError(t, err, "Failed to open gorm sqlite database")

	sqlxDB, err := database.Connect(context.Background(), "sqlite3", ":memory:", database.PoolOptions{MaxOpenConns: 1, MaxIdleConns: 1})
	require.NoError(t, err, "Failed to open sqlx sqlite3 database")

	return map[string]database.Conn{
		"gorm": gormDB,
		"sqlx": sqlxDB,
	}
}

func setupIntegrationTestSuite(t *testing.T, conn database.Conn) *IntegrationTestSuite {
	gin.SetMode(gin.TestMode)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, regionsvc.Migrate(context.Background(), conn), "Failed to migrate test database")
	repo, err := regionsvc.NewRepositoryFor(conn)
	require.NoError(t, err)

	deps := &types.Dependencies{
		DB:               conn,
		RegionRepository: repo,
		Logger:           zerolog.Nop(),
	}

	router := gin.New()
	router.Use(gin.Recovery())

	// Create a minimal rate limiter setup for testing
	rateLimiters := &sync.Map{}
	cleanupStop := make(chan struct{})
	t.Cleanup(func() { close(cleanupStop) })

	err = api.RegisterRoutes(router, deps, config.RateLimitConfig{}, rateLimiters, cleanupStop, &sync.Once{})
	require.NoError(t, err, "Failed to register routes")

	return &IntegrationTestSuite{t: t, conn: conn, router: router}
}

func forEachBackend(t *testing.T, fn func(t *testing.T, suite *IntegrationTestSuite)) {
	for name, conn := range openBackends(t) {
		conn := conn
		t.Run(name, func(t *testing.T) {
			fn(t, setupIntegrationTestSuite(t, conn))
		})
	}
}

func (suite *IntegrationTestSuite) makeRequest(method, path string, body interface{}) *httptest.ResponseRecorder {
	var reqBody bytes.Buffer
	if body != nil {
		require.NoError(suite.t, json.NewEncoder(&reqBody).Encode(body))
	}

	req := httptest.NewRequest(method, path, &reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *IntegrationTestSuite) decodeView(w *httptest.ResponseRecorder) regions.RegionView {
	var view regions.RegionView
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &view))
	return view
}

func (suite *IntegrationTestSuite) list() []regions.RegionView {
	w := suite.makeRequest(http.MethodGet, "/api/regions", nil)
	require.Equal(suite.t, http.StatusOK, w.Code)
	var views []regions.RegionView
	require.NoError(suite.t, json.Unmarshal(w.Body.Bytes(), &views))
	return views
}

func TestRegionLifecycle(t *testing.T) {
	forEachBackend(t, func(t *testing.T, suite *IntegrationTestSuite) {
		suite.t = t

		// Empty store lists as an empty array
		empty := suite.makeRequest(http.MethodGet, "/api/regions", nil)
		assert.Equal(t, http.StatusOK, empty.Code)
		assert.JSONEq(t, `[]`, empty.Body.String())

		// Create Wellington
		created := suite.makeRequest(http.MethodPost, "/api/regions", map[string]interface{}{
			"code":     "NZ-WGN",
			"name":     "Wellington",
			"imageUrl": "https://example.com/wgn.jpg",
		})
		require.Equal(t, http.StatusCreated, created.Code)
		wgn := suite.decodeView(created)
		assert.Equal(t, "/api/regions/"+wgn.ID.String(), created.Header().Get("Location"))

		// Fetch it back through Location
		fetched := suite.makeRequest(http.MethodGet, created.Header().Get("Location"), nil)
		require.Equal(t, http.StatusOK, fetched.Code)
		assert.Equal(t, wgn, suite.decodeView(fetched))

		// Replace every field, dropping the image
		updated := suite.makeRequest(http.MethodPut, "/api/regions/"+wgn.ID.String(), map[string]interface{}{
			"code": "NZ-WLG",
			"name": "Greater Wellington",
		})
		require.Equal(t, http.StatusOK, updated.Code)
		after := suite.decodeView(updated)
		assert.Equal(t, wgn.ID, after.ID)
		assert.Equal(t, "NZ-WLG", after.Code)
		assert.Nil(t, after.ImageURL)
		assert.Equal(t, []regions.RegionView{after}, suite.list())

		// Delete returns the final state and removes the region
		deleted := suite.makeRequest(http.MethodDelete, "/api/regions/"+wgn.ID.String(), nil)
		require.Equal(t, http.StatusOK, deleted.Code)
		assert.Equal(t, after, suite.decodeView(deleted))

		for _, method := range []string{http.MethodGet, http.MethodDelete} {
			w := suite.makeRequest(method, "/api/regions/"+wgn.ID.String(), nil)
			assert.Equal(t, http.StatusNotFound, w.Code, method)
			assert.Empty(t, w.Body.String(), method)
		}
		assert.Empty(t, suite.list())
	})
}

func TestUpdateUnknownRegionLeavesStoreUnchanged(t *testing.T) {
	forEachBackend(t, func(t *testing.T, suite *IntegrationTestSuite) {
		suite.t = t

		created := suite.makeRequest(http.MethodPost, "/api/regions", map[string]interface{}{
			"code": "NZ-AKL",
			"name": "Auckland",
		})
		require.Equal(t, http.StatusCreated, created.Code)
		before := suite.list()

		w := suite.makeRequest(http.MethodPut, "/api/regions/3f1c5a7e-2b3d-4e5f-8a9b-0c1d2e3f4a5b", map[string]interface{}{
			"code": "NZ-XXX",
			"name": "Nowhere",
		})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, before, suite.list())
	})
}

func TestInvalidRequestsDoNotTouchStore(t *testing.T) {
	forEachBackend(t, func(t *testing.T, suite *IntegrationTestSuite) {
		suite.t = t

		tests := []struct {
			name   string
			method string
			path   string
			body   interface{}
		}{
			{"create without code", http.MethodPost, "/api/regions", map[string]interface{}{"name": "Otago"}},
			{"create without name", http.MethodPost, "/api/regions", map[string]interface{}{"code": "NZ-OTA"}},
			{"get malformed id", http.MethodGet, "/api/regions/not-a-uuid", nil},
			{"update malformed id", http.MethodPut, "/api/regions/7", map[string]interface{}{"code": "NZ-OTA", "name": "Otago"}},
			{"delete malformed id", http.MethodDelete, "/api/regions/7", nil},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				w := suite.makeRequest(tt.method, tt.path, tt.body)
				assert.Equal(t, http.StatusBadRequest, w.Code)
			})
		}
		assert.Empty(t, suite.list())
	})
}

func TestConcurrentCreates(t *testing.T) {
	forEachBackend(t, func(t *testing.T, suite *IntegrationTestSuite) {
		suite.t = t

		const workers = 10
		var wg sync.WaitGroup
		codes := make(chan int, workers)

		for i := 0; i < workers; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				body, _ := json.Marshal(map[string]interface{}{
					"code": fmt.Sprintf("NZ-%02d", i),
					"name": fmt.Sprintf("Region %d", i),
				})
				req := httptest.NewRequest(http.MethodPost, "/api/regions", bytes.NewReader(body))
				req.Header.Set("Content-Type", "application/json")
				w := httptest.NewRecorder()
				suite.router.ServeHTTP(w, req)
				codes <- w.Code
			}(i)
		}
		wg.Wait()
		close(codes)

		for code := range codes {
			assert.Equal(t, http.StatusCreated, code)
		}

		views := suite.list()
		assert.Len(t, views, workers)
		seen := make(map[string]bool, workers)
		for _, v := range views {
			assert.False(t, seen[v.ID.String()], "duplicate id %s", v.ID)
			seen[v.ID.String()] = true
		}
	})
}

func TestHealthReflectsDatabase(t *testing.T) {
	forEachBackend(t, func(t *testing.T, suite *IntegrationTestSuite) {
		suite.t = t

		w := suite.makeRequest(http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)

		require.NoError(t, suite.conn.Close())
		w = suite.makeRequest(http.MethodGet, "/health", nil)
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		// Storage failures surface as 500 with an error code
		w = suite.makeRequest(http.MethodGet, "/api/regions", nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Contains(t, w.Body.String(), "DATABASE_QUERY")
	})
}
