package callable

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tharindu-dev/portfolio-backend/internal/admins"
	"github.com/tharindu-dev/portfolio-backend/internal/auth"
	"github.com/tharindu-dev/portfolio-backend/internal/blog"
	"github.com/tharindu-dev/portfolio-backend/internal/cache"
	"github.com/tharindu-dev/portfolio-backend/internal/casestudy"
	"github.com/tharindu-dev/portfolio-backend/internal/contact"
	"github.com/tharindu-dev/portfolio-backend/internal/domain"
	"github.com/tharindu-dev/portfolio-backend/internal/images"
	"github.com/tharindu-dev/portfolio-backend/internal/profilesite"
	"github.com/tharindu-dev/portfolio-backend/internal/store/memory"
)

const (
	adminToken = "test-admin-token"
	superToken = "test-super-token"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	stores := memory.New().Stores()
	require.NoError(t, stores.Accounts.Create(context.Background(), &domain.AdminAccount{
		UID: "admin-uid", Email: "admin@example.com", Role: domain.RoleAdmin,
	}))
	require.NoError(t, stores.Accounts.Create(context.Background(), &domain.AdminAccount{
		UID: "super-uid", Email: "super@example.com", Role: domain.RoleSuperAdmin,
	}))

	gate := auth.NewGate(stores.Accounts)
	noCache := cache.New(nil)

	dispatcher := NewDispatcher(Deps{
		Blog:        blog.NewService(stores.Blog, gate, noCache),
		CaseStudies: casestudy.NewService(stores.CaseStudies, gate, noCache),
		Profile:     profilesite.NewService(stores.Profiles, gate, noCache),
		Contacts:    contact.NewService(stores.Contacts, gate),
		Admins:      admins.NewService(stores.Accounts, auth.StaticUserAdmin{}, gate),
		Images:      images.NewService(images.NewMemoryStore(), stores.Images, gate),
	})

	verifier := &auth.StaticVerifier{Tokens: map[string]auth.Identity{
		adminToken: {UID: "admin-uid", Email: "admin@example.com"},
		superToken: {UID: "super-uid", Email: "super@example.com"},
	}}

	r := gin.New()
	v1 := r.Group("/v1")
	v1.Use(auth.Middleware(verifier))
	dispatcher.RegisterRoutes(v1)
	return r
}

func call(t *testing.T, r *gin.Engine, name, token string, data any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(map[string]any{"data": data})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/v1/functions/"+name, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBlogPost(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, "createBlogPost", adminToken, map[string]any{
		"title":   "Hello World",
		"summary": "greeting",
		"content": "body",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Result domain.BlogPost `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "hello-world", resp.Result.Slug)
	assert.NotEmpty(t, resp.Result.ID)
}

func TestUnauthenticatedEnvelope(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, "createBlogPost", "", map[string]any{
		"title": "x", "summary": "y", "content": "z",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Error struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNAUTHENTICATED", resp.Error.Status)
}

func TestUnknownFunction(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, "doesNotExist", adminToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var resp struct {
		Error struct {
			Status string `json:"status"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "NOT_FOUND", resp.Error.Status)
}

func TestValidationDetails(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, "createBlogPost", adminToken, map[string]any{"title": "only"})
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Error struct {
			Status  string `json:"status"`
			Details []struct {
				Field string `json:"field"`
			} `json:"details"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_ARGUMENT", resp.Error.Status)
	assert.NotEmpty(t, resp.Error.Details)
}

func TestSubmitContactFormAnonymously(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, "submitContactForm", "", map[string]any{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"message": "hello",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Result struct {
			Success bool   `json:"success"`
			ID      string `json:"id"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Result.Success)
	assert.NotEmpty(t, resp.Result.ID)
}

func TestCreateAdminReturnsUID(t *testing.T) {
	r := newTestRouter(t)

	w := call(t, r, "createAdmin", superToken, map[string]any{
		"email":    "new-admin@example.com",
		"password": "longenough",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Result struct {
			Success bool   `json:"success"`
			UID     string `json:"uid"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Result.Success)
	assert.NotEmpty(t, resp.Result.UID)
}

func TestDeleteBlogPostReturnsSuccess(t *testing.T) {
	r := newTestRouter(t)

	created := call(t, r, "createBlogPost", adminToken, map[string]any{
		"title": "Doomed Post", "summary": "s", "content": "c",
	})
	require.Equal(t, http.StatusOK, created.Code)

	var resp struct {
		Result domain.BlogPost `json:"result"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &resp))

	w := call(t, r, "deleteBlogPost", adminToken, map[string]any{"id": resp.Result.ID})
	require.Equal(t, http.StatusOK, w.Code)

	var del struct {
		Result struct {
			Success bool `json:"success"`
		} `json:"result"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &del))
	assert.True(t, del.Result.Success)
}
