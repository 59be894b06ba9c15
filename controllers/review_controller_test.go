package controllers_test

import (
	"net/http"
	"testing"

	"dhonveli-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewCreateAndList(t *testing.T) {
	router, db := newTestServer(t)

	user := models.User{Username: "alice", Password: "x", Email: "alice@example.com"}
	require.NoError(t, db.Create(&user).Error)
	hotel := models.Hotel{Name: "Breeze Inn"}
	require.NoError(t, db.Create(&hotel).Error)

	w := doJSON(t, router, http.MethodPost, "/reviews/", map[string]interface{}{
		"rating":   4,
		"review":   "Quiet rooms, slow breakfast.",
		"user_id":  user.ID,
		"hotel_id": hotel.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]interface{}
	decodeBody(t, w, &created)
	assert.NotEmpty(t, created["date_time"])

	w = doJSON(t, router, http.MethodGet, "/reviews/", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var reviews []map[string]interface{}
	decodeBody(t, w, &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, 4.0, reviews[0]["rating"])

	nestedHotel, ok := reviews[0]["hotel"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "Breeze Inn", nestedHotel["name"])
	nestedUser, ok := reviews[0]["user"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "alice", nestedUser["username"])
}

func TestReviewCreateDanglingRefsIs409(t *testing.T) {
	router, db := newTestServer(t)

	w := doJSON(t, router, http.MethodPost, "/reviews/", map[string]interface{}{
		"rating":   5,
		"review":   "Great stay.",
		"user_id":  999,
		"hotel_id": 999,
	})
	require.Equal(t, http.StatusConflict, w.Code)

	var count int64
	require.NoError(t, db.Model(&models.Review{}).Count(&count).Error)
	assert.EqualValues(t, 0, count)
}

func TestReviewListEmptyIs404(t *testing.T) {
	router, _ := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodGet, "/reviews/", nil).Code)
}

func TestReviewDeleteMissingIs404(t *testing.T) {
	router, _ := newTestServer(t)
	assert.Equal(t, http.StatusNotFound, doJSON(t, router, http.MethodDelete, "/reviews/7", nil).Code)
}
