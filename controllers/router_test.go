package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"dhonveli-backend/config"
	"dhonveli-backend/controllers"
	"dhonveli-backend/routes"
	"dhonveli-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	// sqlite leaves foreign keys off unless asked; MySQL always enforces
	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, config.Migrate(db))

	router := routes.SetupRouter(
		controllers.NewUserController(services.NewUserService(db)),
		controllers.NewHotelController(services.NewHotelService(db)),
		controllers.NewRoomTypeController(services.NewRoomTypeService(db)),
		controllers.NewRoomController(services.NewRoomService(db)),
		controllers.NewBookingController(services.NewBookingService(db)),
		controllers.NewActivityController(services.NewActivityService(db)),
		controllers.NewTicketController(services.NewTicketService(db)),
		controllers.NewReviewController(services.NewReviewService(db)),
	)
	return router, db
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
