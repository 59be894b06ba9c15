package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserCreateThenFetchByUsername(t *testing.T) {
	router, _ := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/users/", map[string]interface{}{
		"username":       "alice",
		"password":       "s3cret",
		"email":          "alice@example.com",
		"loyalty_points": 5,
		"role":           "normal",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, router, http.MethodGet, "/users/alice", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var user map[string]interface{}
	decodeBody(t, w, &user)
	assert.Equal(t, "alice", user["username"])
	assert.Equal(t, 5.0, user["loyalty_points"])
	_, leaked := user["password"]
	assert.False(t, leaked)
}

func TestUserListEmptyIs404(t *testing.T) {
	router, _ := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/users/", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserFetchMissingIs404(t *testing.T) {
	router, _ := newTestServer(t)
	w := doJSON(t, router, http.MethodGet, "/users/nobody", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUserCreateDuplicateIs409(t *testing.T) {
	router, _ := newTestServer(t)

	payload := map[string]interface{}{
		"username": "alice",
		"password": "s3cret",
		"email":    "alice@example.com",
	}
	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/users/", payload).Code)
	assert.Equal(t, http.StatusConflict, doJSON(t, router, http.MethodPost, "/users/", payload).Code)
}

func TestUserCreateMissingFieldsIs422(t *testing.T) {
	router, _ := newTestServer(t)
	w := doJSON(t, router, http.MethodPost, "/users/", map[string]interface{}{"username": "alice"})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestUserPatchZeroLoyaltyPointsApplies(t *testing.T) {
	router, _ := newTestServer(t)

	require.Equal(t, http.StatusCreated, doJSON(t, router, http.MethodPost, "/users/", map[string]interface{}{
		"username":       "alice",
		"password":       "s3cret",
		"email":          "alice@example.com",
		"loyalty_points": 50,
	}).Code)

	w := doJSON(t, router, http.MethodPatch, "/users/alice", map[string]interface{}{
		"loyalty_points": 0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var user map[string]interface{}
	decodeBody(t, w, &user)
	assert.Equal(t, 0.0, user["loyalty_points"])
	assert.Equal(t, "normal", user["role"]) // untouched
}

func TestUserPatchMissingIs404(t *testing.T) {
	router, _ := newTestServer(t)
	w := doJSON(t, router, http.MethodPatch, "/users/ghost", map[string]interface{}{"role": "vip"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}
