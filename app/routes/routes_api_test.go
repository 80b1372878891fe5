package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Beto2203/feedback-backend/app/auth"
	"github.com/Beto2203/feedback-backend/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type api struct {
	t      *testing.T
	router *mux.Router
}

func newAPI(t *testing.T) *api {
	t.Helper()

	opts := badger.DefaultOptions(t.TempDir()).WithLogger(nil)
	db, err := badger.Open(opts)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	authService := auth.NewService([]byte("test-secret"), time.Hour)
	return &api{t: t, router: SetupRoutes(db, authService)}
}

func (a *api) do(method, path, token string, body interface{}) *httptest.ResponseRecorder {
	a.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(a.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *api) register(username, name, password string) {
	a.t.Helper()
	w := a.do(http.MethodPost, "/users", "", map[string]string{
		"username": username,
		"name":     name,
		"password": password,
	})
	require.Equal(a.t, http.StatusCreated, w.Code)
}

func (a *api) login(username, password string) string {
	a.t.Helper()
	w := a.do(http.MethodPost, "/login", "", map[string]string{
		"username": username,
		"password": password,
	})
	require.Equal(a.t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(a.t, resp.Token)
	return resp.Token
}

func (a *api) listFeedbacks() []*models.FeedbackDetail {
	a.t.Helper()
	w := a.do(http.MethodGet, "/feedbacks", "", nil)
	require.Equal(a.t, http.StatusOK, w.Code)

	var feedbacks []*models.FeedbackDetail
	require.NoError(a.t, json.Unmarshal(w.Body.Bytes(), &feedbacks))
	return feedbacks
}

func TestFeedbackLifecycle(t *testing.T) {
	a := newAPI(t)

	a.register("LionHeart", "Richard", "plantagenet1234")
	token := a.login("LionHeart", "plantagenet1234")

	// Create a feedback item
	w := a.do(http.MethodPost, "/feedbacks", token, map[string]string{
		"title":   "Slow page load",
		"tag":     "Bug",
		"content": "The dashboard takes ten seconds to render",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.FeedbackBlog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.ID)
	assert.Equal(t, []string{}, created.Likes)
	assert.Equal(t, []string{}, created.Comments)

	// It shows up in the list with the author populated
	feedbacks := a.listFeedbacks()
	require.Len(t, feedbacks, 1)
	assert.Equal(t, "Slow page load", feedbacks[0].Title)
	assert.Equal(t, "LionHeart", feedbacks[0].Author.Username)
	assert.Empty(t, feedbacks[0].Comments)

	// Comment on it
	w = a.do(http.MethodPost, "/feedbacks/"+created.ID, token, map[string]string{
		"comment": "Reproduced on Firefox as well",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var comment models.Comment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &comment))
	require.NotEmpty(t, comment.ID)

	feedbacks = a.listFeedbacks()
	require.Len(t, feedbacks[0].Comments, 1)
	assert.Equal(t, "Reproduced on Firefox as well", feedbacks[0].Comments[0].Comment)

	// Like, then unlike
	w = a.do(http.MethodPut, "/feedbacks/likes/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var liked models.FeedbackBlog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	assert.Len(t, liked.Likes, 1)

	w = a.do(http.MethodPut, "/feedbacks/likes/"+created.ID, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &liked))
	assert.Empty(t, liked.Likes)

	// Delete the comment
	w = a.do(http.MethodDelete, "/feedbacks/"+created.ID+"/"+comment.ID, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	feedbacks = a.listFeedbacks()
	assert.Empty(t, feedbacks[0].Comments)

	// Delete the feedback item
	w = a.do(http.MethodDelete, "/feedbacks/"+created.ID, token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	assert.Empty(t, a.listFeedbacks())
}

func TestAuthenticationRequired(t *testing.T) {
	a := newAPI(t)

	a.register("LionHeart", "Richard", "plantagenet1234")
	token := a.login("LionHeart", "plantagenet1234")

	// Creating a feedback item without a token is rejected
	w := a.do(http.MethodPost, "/feedbacks", "", map[string]string{
		"title": "No token", "tag": "Bug",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// A tampered token is rejected by the middleware
	w = a.do(http.MethodGet, "/feedbacks", token+"324", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"error": "token missing or invalid"}`, w.Body.String())

	// Listing without a token works
	w = a.do(http.MethodGet, "/feedbacks", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOwnershipEnforced(t *testing.T) {
	a := newAPI(t)

	a.register("LionHeart", "Richard", "plantagenet1234")
	a.register("Saladin", "Yusuf", "ayyubid1234")
	owner := a.login("LionHeart", "plantagenet1234")
	other := a.login("Saladin", "ayyubid1234")

	w := a.do(http.MethodPost, "/feedbacks", owner, map[string]string{
		"title": "Owned", "tag": "Feature",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var created models.FeedbackBlog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	// Another user cannot delete it
	w = a.do(http.MethodDelete, "/feedbacks/"+created.ID, other, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	require.Len(t, a.listFeedbacks(), 1)

	// But anyone logged in can like it
	w = a.do(http.MethodPut, "/feedbacks/likes/"+created.ID, other, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRegistrationValidation(t *testing.T) {
	a := newAPI(t)

	// Short username
	w := a.do(http.MethodPost, "/users", "", map[string]string{
		"username": "ab", "name": "A", "password": "longenough",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Short password
	w = a.do(http.MethodPost, "/users", "", map[string]string{
		"username": "valid", "name": "V", "password": "abc",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Duplicate username
	a.register("LionHeart", "Richard", "plantagenet1234")
	w = a.do(http.MethodPost, "/users", "", map[string]string{
		"username": "LionHeart", "name": "Pretender", "password": "usurper1234",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Wrong password on login
	w = a.do(http.MethodPost, "/login", "", map[string]string{
		"username": "LionHeart", "password": "wrongpassword",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHealthz(t *testing.T) {
	a := newAPI(t)

	w := a.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
}
