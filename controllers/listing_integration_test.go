//go:build integration

package controllers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/models"
	"homestay/policy"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		getEnv("TEST_DB_HOST", "localhost"),
		getEnv("TEST_DB_PORT", "5432"),
		getEnv("TEST_DB_USER", "postgres"),
		getEnv("TEST_DB_PASSWORD", "postgres"),
		getEnv("TEST_CONTROLLER_DB_NAME", "homestay_controller_test"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to test database: %v", err)
	}
	config.DB = db

	db.Exec("DROP TABLE IF EXISTS reviews")
	db.Exec("DROP TABLE IF EXISTS bookings")
	db.Exec("DROP TABLE IF EXISTS blocked_dates")
	db.Exec("DROP TABLE IF EXISTS rooms")
	db.Exec("DROP TABLE IF EXISTS properties")
	db.Exec("DROP TABLE IF EXISTS users")
	if err := db.AutoMigrate(
		&models.User{}, &models.Property{}, &models.Room{},
		&models.BlockedDate{}, &models.Booking{}, &models.Review{},
	); err != nil {
		log.Fatalf("failed to auto-migrate test database: %v", err)
	}

	os.Exit(m.Run())
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func cleanTables() {
	config.DB.Exec("DELETE FROM reviews")
	config.DB.Exec("DELETE FROM bookings")
	config.DB.Exec("DELETE FROM rooms")
	config.DB.Exec("DELETE FROM properties")
	config.DB.Exec("DELETE FROM users")
}

// newActorContext tạo gin context cho request GET với actor đã xác thực
func newActorContext(t *testing.T, url string, actor policy.Actor) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", url, nil)
	c.Set("actor", actor)
	return c, w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	var body struct {
		Code int             `json:"code"`
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.NoError(t, json.Unmarshal(body.Data, target))
}

// Chủ nhà phải thấy cả chỗ ở đã ngừng hoạt động của mình,
// và không thấy chỗ ở của chủ nhà khác
func TestGetOwnerProperties(t *testing.T) {
	cleanTables()

	ownerA := models.User{ID: 1, Email: "a@example.com", Password: "x", Role: constants.RoleHouseOwner, Status: constants.UserStatusActive}
	ownerB := models.User{ID: 2, Email: "b@example.com", Password: "x", Role: constants.RoleHouseOwner, Status: constants.UserStatusActive}
	require.NoError(t, config.DB.Create(&ownerA).Error)
	require.NoError(t, config.DB.Create(&ownerB).Error)

	active := models.Property{ID: 1, OwnerID: ownerA.ID, Name: "Nhà hoạt động", IsActive: true}
	inactive := models.Property{ID: 2, OwnerID: ownerA.ID, Name: "Nhà đã ngưng", IsActive: false}
	other := models.Property{ID: 3, OwnerID: ownerB.ID, Name: "Nhà người khác", IsActive: true}
	for _, p := range []models.Property{active, inactive, other} {
		require.NoError(t, config.DB.Create(&p).Error)
	}

	c, w := newActorContext(t, "/api/v1/my/properties", policy.Actor{ID: ownerA.ID, Role: constants.RoleHouseOwner})
	GetOwnerProperties(c)

	require.Equal(t, 200, w.Code)
	var properties []dto.PropertyResponse
	decodeData(t, w, &properties)

	require.Len(t, properties, 2)
	ids := []uint{properties[0].ID, properties[1].ID}
	assert.Contains(t, ids, active.ID)
	assert.Contains(t, ids, inactive.ID)
}

// Danh sách public chỉ chứa chỗ ở đang hoạt động
func TestGetAllProperties_HidesInactive(t *testing.T) {
	cleanTables()

	require.NoError(t, config.DB.Create(&models.Property{ID: 1, OwnerID: 1, Name: "Nhà hoạt động", IsActive: true}).Error)
	require.NoError(t, config.DB.Create(&models.Property{ID: 2, OwnerID: 1, Name: "Nhà đã ngưng", IsActive: false}).Error)

	c, w := newActorContext(t, "/api/v1/properties", policy.Actor{})
	GetAllProperties(c)

	require.Equal(t, 200, w.Code)
	var properties []dto.PropertyResponse
	decodeData(t, w, &properties)

	require.Len(t, properties, 1)
	assert.Equal(t, uint(1), properties[0].ID)
}

// Chủ nhà thấy cả phòng đã ngừng hoạt động của mình
func TestGetOwnerRooms(t *testing.T) {
	cleanTables()

	require.NoError(t, config.DB.Create(&models.Property{ID: 1, OwnerID: 7, Name: "Nhà", IsActive: true}).Error)
	rooms := []models.Room{
		{RoomId: 1, PropertyID: 1, OwnerID: 7, RoomName: "Phòng 101", PricePerDay: 500, MaxOccupancy: 2, IsActive: true},
		{RoomId: 2, PropertyID: 1, OwnerID: 7, RoomName: "Phòng 102", PricePerDay: 500, MaxOccupancy: 2, IsActive: false},
		{RoomId: 3, PropertyID: 1, OwnerID: 8, RoomName: "Phòng khác chủ", PricePerDay: 500, MaxOccupancy: 2, IsActive: true},
	}
	for _, r := range rooms {
		require.NoError(t, config.DB.Create(&r).Error)
	}

	c, w := newActorContext(t, "/api/v1/my/rooms", policy.Actor{ID: 7, Role: constants.RoleHouseOwner})
	GetOwnerRooms(c)

	require.Equal(t, 200, w.Code)
	var got []dto.RoomResponse
	decodeData(t, w, &got)
	require.Len(t, got, 2)
}

// Khách liệt kê được đánh giá do chính mình viết
func TestGetMyReviews(t *testing.T) {
	cleanTables()

	guest := models.User{ID: 5, Email: "g@example.com", Password: "x", Role: constants.RoleCustomer, Status: constants.UserStatusActive}
	require.NoError(t, config.DB.Create(&guest).Error)

	reviews := []models.Review{
		{ID: 1, BookingID: 1, GuestID: guest.ID, PropertyID: 1, RoomID: 1, Star: 5},
		{ID: 2, BookingID: 2, GuestID: guest.ID, PropertyID: 2, RoomID: 2, Star: 3},
		{ID: 3, BookingID: 3, GuestID: 9, PropertyID: 1, RoomID: 1, Star: 1},
	}
	for _, r := range reviews {
		require.NoError(t, config.DB.Create(&r).Error)
	}

	ctrl := NewReviewController(config.DB, nil)
	c, w := newActorContext(t, "/api/v1/my/reviews", policy.Actor{ID: guest.ID, Role: constants.RoleCustomer})
	ctrl.GetMyReviews(c)

	require.Equal(t, 200, w.Code)
	var got []dto.ReviewResponse
	decodeData(t, w, &got)
	require.Len(t, got, 2)
	for _, review := range got {
		assert.Equal(t, guest.ID, review.Guest.ID)
	}
}
