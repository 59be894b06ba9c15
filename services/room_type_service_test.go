package services

import (
	"testing"

	"dhonveli-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestRoomTypeCreateBatch(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomTypeService(db)
	hotel := seedHotel(t, db, "Breeze Inn")

	types, err := svc.CreateBatch(hotel.ID, []RoomTypeInput{
		{Name: "Deluxe", Price: 120, BedCount: 2, Quantity: 5},
		{Name: "Suite", Price: 300, BedCount: 3, Quantity: 2},
	})
	require.NoError(t, err)
	require.Len(t, types, 2)
	assert.Equal(t, hotel.ID, types[0].HotelID)

	var count int64
	require.NoError(t, db.Model(&models.RoomType{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)
}

func TestRoomTypeCreateBatchMissingHotel(t *testing.T) {
	svc := NewRoomTypeService(newTestDB(t))
	_, err := svc.CreateBatch(9, []RoomTypeInput{{Name: "Deluxe"}})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRoomTypePatchPartial(t *testing.T) {
	db := newTestDB(t)
	svc := NewRoomTypeService(db)
	hotel := seedHotel(t, db, "Breeze Inn")
	rt := seedRoomType(t, db, hotel.ID, "Deluxe")

	price := 150.0
	updated, err := svc.Patch(rt.ID, RoomTypePatch{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 150.0, updated.Price)
	assert.Equal(t, "Deluxe", updated.Name)
	assert.Equal(t, 2, updated.BedCount)
}

func TestRoomTypeDeleteMissing(t *testing.T) {
	svc := NewRoomTypeService(newTestDB(t))
	assert.ErrorIs(t, svc.Delete(3), gorm.ErrRecordNotFound)
}
