package services

import (
	"testing"

	"dhonveli-backend/config"
	"dhonveli-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a fresh in-memory database with the full schema.
// MaxOpenConns(1) keeps gorm's pool on the single :memory: connection.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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
	return db
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: "irrelevant",
		Email:    username + "@example.com",
		Role:     "normal",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedHotel(t *testing.T, db *gorm.DB, name string) models.Hotel {
	t.Helper()
	hotel := models.Hotel{Name: name}
	require.NoError(t, db.Create(&hotel).Error)
	return hotel
}

func seedRoomType(t *testing.T, db *gorm.DB, hotelID uint, name string) models.RoomType {
	t.Helper()
	rt := models.RoomType{Name: name, Price: 100, BedCount: 2, Quantity: 5, HotelID: hotelID}
	require.NoError(t, db.Create(&rt).Error)
	return rt
}

func seedRoom(t *testing.T, db *gorm.DB, roomTypeID uint, number string) models.Room {
	t.Helper()
	room := models.Room{RoomNumber: number, RoomTypeID: roomTypeID}
	require.NoError(t, db.Create(&room).Error)
	return room
}
