package catalogd

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/attidev/storefront/internal/catalog"
	"github.com/attidev/storefront/internal/gateway"
	"github.com/attidev/storefront/pkg/bootstrap"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func newTestRouter(t *testing.T, seed []catalog.Product) *chi.Mux {
	t.Helper()
	store := NewStore(seed)
	auth := NewAuthenticator(SeedAccounts())
	handler := NewHandler(store, auth, bootstrap.NewDiscardLogger())
	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func seedThree() []catalog.Product {
	return []catalog.Product{
		{ID: 1, Title: "Essence Mascara", Category: "beauty", Price: 9.99},
		{ID: 2, Title: "Eyeshadow Palette", Category: "beauty", Price: 19.99},
		{ID: 3, Title: "Wooden Bathroom Organizer", Category: "furniture", Price: 29.99},
	}
}

func Test_Handler_Login(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantError  string
	}{
		{
			name:       "Success - seeded account",
			body:       `{"username":"emilys","password":"emilyspass","expiresInMins":30}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "Error - wrong password",
			body:       `{"username":"emilys","password":"nope"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid credentials",
		},
		{
			name:       "Error - unknown user",
			body:       `{"username":"ghost","password":"boo"}`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid credentials",
		},
		{
			name:       "Error - malformed body",
			body:       `{"username":`,
			wantStatus: http.StatusBadRequest,
			wantError:  "Invalid request body",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(t, seedThree())
			req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			// when
			router.ServeHTTP(rec, req)
			// then
			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantError != "" {
				var errResp ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errResp))
				assert.Equal(t, tc.wantError, errResp.Message)
				return
			}
			var user gateway.AuthUser
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
			assert.Equal(t, "emilys", user.Username)
			assert.NotEmpty(t, user.Token)
			assert.NotEmpty(t, user.RefreshToken)
		})
	}
}

func Test_Handler_Me(t *testing.T) {
	// given: a logged-in session
	router := newTestRouter(t, seedThree())
	loginReq := httptest.NewRequest(http.MethodPost, "/auth/login",
		strings.NewReader(`{"username":"emilys","password":"emilyspass"}`))
	loginRec := httptest.NewRecorder()
	router.ServeHTTP(loginRec, loginReq)
	require.Equal(t, http.StatusOK, loginRec.Code)
	var user gateway.AuthUser
	require.NoError(t, json.Unmarshal(loginRec.Body.Bytes(), &user))

	testCases := []struct {
		name       string
		authHeader string
		wantStatus int
	}{
		{name: "Success - valid token", authHeader: "Bearer " + user.Token, wantStatus: http.StatusOK},
		{name: "Error - missing header", authHeader: "", wantStatus: http.StatusUnauthorized},
		{name: "Error - unknown token", authHeader: "Bearer bogus", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			if tc.authHeader != "" {
				req.Header.Set("Authorization", tc.authHeader)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			// then
			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				var me gateway.AuthUser
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &me))
				assert.Equal(t, "emilys", me.Username)
			}
		})
	}
}

func Test_Handler_List(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		wantStatus int
		wantIDs    []int
		wantTotal  int
	}{
		{name: "default paging", target: "/products", wantStatus: http.StatusOK, wantIDs: []int{1, 2, 3}, wantTotal: 3},
		{name: "limit and skip", target: "/products?limit=1&skip=1", wantStatus: http.StatusOK, wantIDs: []int{2}, wantTotal: 3},
		{name: "skip beyond the end", target: "/products?limit=10&skip=10", wantStatus: http.StatusOK, wantIDs: []int{}, wantTotal: 3},
		{name: "non-numeric limit", target: "/products?limit=abc", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(t, seedThree())
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			rec := httptest.NewRecorder()
			// when
			router.ServeHTTP(rec, req)
			// then
			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			var page catalog.Page
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
			assert.Equal(t, tc.wantTotal, page.Total)
			gotIDs := make([]int, 0, len(page.Products))
			for _, p := range page.Products {
				gotIDs = append(gotIDs, p.ID)
			}
			assert.Equal(t, tc.wantIDs, gotIDs)
		})
	}
}

func Test_Handler_Search(t *testing.T) {
	// given
	router := newTestRouter(t, seedThree())
	req := httptest.NewRequest(http.MethodGet, "/products/search?q=EYE", nil)
	rec := httptest.NewRecorder()
	// when
	router.ServeHTTP(rec, req)
	// then: matching is case-insensitive and total counts all matches
	require.Equal(t, http.StatusOK, rec.Code)
	var page catalog.Page
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Total)
	require.Len(t, page.Products, 1)
	assert.Equal(t, "Eyeshadow Palette", page.Products[0].Title)
}

func Test_Handler_Create(t *testing.T) {
	testCases := []struct {
		name       string
		body       string
		wantStatus int
		wantFields []string
	}{
		{
			name:       "Success - assigns the next id",
			body:       `{"title":"Lip Tint","price":12.5,"brand":"Glossier","category":"beauty"}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "Error - validation failures are itemized",
			body:       `{"price":-2,"rating":9}`,
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"Title", "Price", "Brand", "Category", "Rating"},
		},
		{
			name:       "Error - malformed body",
			body:       `{`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(t, seedThree())
			req := httptest.NewRequest(http.MethodPost, "/products/add", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()
			// when
			router.ServeHTTP(rec, req)
			// then
			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusCreated {
				var product catalog.Product
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &product))
				assert.Equal(t, 4, product.ID)
				assert.Equal(t, "Lip Tint", product.Title)
				return
			}
			if tc.wantFields != nil {
				var resp struct {
					ValidationErrors map[string]string `json:"validation_errors"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
				for _, field := range tc.wantFields {
					assert.Contains(t, resp.ValidationErrors, field)
				}
			}
		})
	}
}

func Test_Handler_Delete(t *testing.T) {
	testCases := []struct {
		name       string
		target     string
		wantStatus int
	}{
		{name: "Success - known product acknowledged", target: "/products/2", wantStatus: http.StatusOK},
		{name: "Error - unknown product", target: "/products/999", wantStatus: http.StatusNotFound},
		{name: "Error - non-numeric id", target: "/products/abc", wantStatus: http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			router := newTestRouter(t, seedThree())
			req := httptest.NewRequest(http.MethodDelete, tc.target, nil)
			rec := httptest.NewRecorder()
			// when
			router.ServeHTTP(rec, req)
			// then
			require.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}
			var result gateway.DeleteResult
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
			assert.True(t, result.IsDeleted)
			assert.Equal(t, 2, result.ID)

			// the product is still listed afterwards; hiding is the client's job
			listRec := httptest.NewRecorder()
			router.ServeHTTP(listRec, httptest.NewRequest(http.MethodGet, "/products", nil))
			var page catalog.Page
			require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &page))
			assert.Equal(t, 3, page.Total)
		})
	}
}

func Test_Handler_HealthCheck(t *testing.T) {
	router := newTestRouter(t, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
