package validator

import (
	"testing"

	"homestay/constants"
	"homestay/errors"
	"homestay/models"

	"github.com/stretchr/testify/assert"
)

func TestValidateUser(t *testing.T) {
	valid := models.User{
		Email:       "guest@example.com",
		Password:    "secret123",
		PhoneNumber: "0912345678",
		Role:        constants.RoleCustomer,
	}

	t.Run("user hợp lệ", func(t *testing.T) {
		user := valid
		assert.NoError(t, ValidateUser(&user))
	})

	t.Run("email rỗng", func(t *testing.T) {
		user := valid
		user.Email = ""
		assert.True(t, errors.HasCode(ValidateUser(&user), errors.ErrCodeInvalidInput))
	})

	t.Run("email sai định dạng", func(t *testing.T) {
		user := valid
		user.Email = "not-an-email"
		assert.True(t, errors.HasCode(ValidateUser(&user), errors.ErrCodeInvalidInput))
	})

	t.Run("mật khẩu quá ngắn", func(t *testing.T) {
		user := valid
		user.Password = "abc"
		assert.True(t, errors.HasCode(ValidateUser(&user), errors.ErrCodeInvalidInput))
	})

	t.Run("số điện thoại sai", func(t *testing.T) {
		user := valid
		user.PhoneNumber = "12345"
		assert.True(t, errors.HasCode(ValidateUser(&user), errors.ErrCodeInvalidInput))
	})

	t.Run("role ngoài tập hợp lệ", func(t *testing.T) {
		user := valid
		user.Role = 9
		assert.True(t, errors.HasCode(ValidateUser(&user), errors.ErrCodeInvalidRole))
	})
}

func TestValidateRoom(t *testing.T) {
	valid := models.Room{RoomName: "Deluxe 101", PricePerDay: 500, MaxOccupancy: 2}

	t.Run("phòng hợp lệ", func(t *testing.T) {
		room := valid
		assert.NoError(t, ValidateRoom(&room))
	})

	t.Run("giá không dương", func(t *testing.T) {
		room := valid
		room.PricePerDay = 0
		assert.True(t, errors.HasCode(ValidateRoom(&room), errors.ErrCodeInvalidInput))
	})

	t.Run("sức chứa không hợp lệ", func(t *testing.T) {
		room := valid
		room.MaxOccupancy = 0
		assert.True(t, errors.HasCode(ValidateRoom(&room), errors.ErrCodeInvalidInput))
	})
}

func TestValidateProperty(t *testing.T) {
	t.Run("tên rỗng", func(t *testing.T) {
		property := models.Property{}
		assert.True(t, errors.HasCode(ValidateProperty(&property), errors.ErrCodeInvalidInput))
	})

	t.Run("tên hợp lệ", func(t *testing.T) {
		property := models.Property{Name: "Homestay Đà Lạt"}
		assert.NoError(t, ValidateProperty(&property))
	})
}
