package blog

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"bloodlink/model"
	"bloodlink/services"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// These tests run against the Firestore emulator and are skipped when
// FIRESTORE_EMULATOR_HOST is not set.
func newTestClient(t *testing.T) *firestore.Client {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}
	fb, err := firestore.NewClient(context.Background(), "bloodlink-test-"+uuid.NewString())
	if err != nil {
		t.Fatalf("create firestore client: %v", err)
	}
	t.Cleanup(func() { fb.Close() })
	return fb
}

// stubVerifier treats the bearer value as the caller email.
type stubVerifier struct{}

func (stubVerifier) Verify(_ context.Context, token string) (*services.Identity, error) {
	return &services.Identity{Email: token, Name: "Test Caller"}, nil
}

func setupRouter(fb *firestore.Client) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	BlogController(r, fb, stubVerifier{})
	return r
}

func do(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

func seedAdmin(t *testing.T, fb *firestore.Client) {
	t.Helper()
	id := uuid.NewString()
	_, err := fb.Collection("users").Doc(id).Set(context.Background(), model.User{
		ID: id, Email: "admin@example.com", Name: "Admin",
		Role: model.RoleAdmin, Status: model.StatusActive, CreatedAt: time.Now(),
	})
	assert.NoError(t, err)
}

func TestCreateBlogForcesDraft(t *testing.T) {
	fb := newTestClient(t)
	r := setupRouter(fb)
	seedAdmin(t, fb)

	w := do(r, "POST", "/blogs", "admin@example.com", map[string]string{
		"title":   "Why donate blood",
		"content": "Every donation counts.",
		"status":  "published",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	id, _ := resp["insertedId"].(string)
	assert.NotEmpty(t, id)

	doc, err := fb.Collection("blogs").Doc(id).Get(context.Background())
	assert.NoError(t, err)
	var stored model.Blog
	assert.NoError(t, doc.DataTo(&stored))
	assert.Equal(t, model.BlogDraft, stored.Status)
}

func TestCreateBlogRequiresAdmin(t *testing.T) {
	fb := newTestClient(t)
	r := setupRouter(fb)

	// Caller has no stored profile at all.
	w := do(r, "POST", "/blogs", "stranger@example.com", map[string]string{
		"title":   "Spam",
		"content": "Spam",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestPublishAndList(t *testing.T) {
	fb := newTestClient(t)
	r := setupRouter(fb)
	seedAdmin(t, fb)

	w := do(r, "POST", "/blogs", "admin@example.com", map[string]string{
		"title":   "Post",
		"content": "Body",
	})
	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	id := resp["insertedId"].(string)

	w = do(r, "PATCH", "/blogs/status/"+id, "admin@example.com", map[string]string{
		"status": "published",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(r, "GET", "/blogs?status=published", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var published []model.Blog
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &published))
	assert.Len(t, published, 1)

	// Without a filter drafts come back too; the list applies only the
	// requested filter.
	w = do(r, "GET", "/blogs", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
