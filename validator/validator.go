package validator

import (
	"homestay/constants"
	"homestay/errors"
	"homestay/models"
	"regexp"
)

// ValidateUser validate thông tin user
func ValidateUser(user *models.User) error {
	if user.Email == "" {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Email không được để trống", nil)
	}

	if !isValidEmail(user.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Email không hợp lệ", nil)
	}

	if user.Password == "" {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Mật khẩu không được để trống", nil)
	}

	if len(user.Password) < 6 {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Mật khẩu phải có ít nhất 6 ký tự", nil)
	}

	if user.PhoneNumber != "" && !isValidPhone(user.PhoneNumber) {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Số điện thoại không hợp lệ", nil)
	}

	if user.Role < constants.RoleCustomer || user.Role > constants.RoleAdmin {
		return errors.NewAppError(errors.ErrCodeInvalidRole, "Role không hợp lệ", nil)
	}

	return nil
}

// ValidateProperty validate thông tin chỗ ở
func ValidateProperty(property *models.Property) error {
	if property.Name == "" {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Tên chỗ ở không được để trống", nil)
	}

	if len(property.Name) > 100 {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Tên chỗ ở không được quá 100 ký tự", nil)
	}

	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.RoomName == "" {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Tên phòng không được để trống", nil)
	}

	if room.PricePerDay <= 0 {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Giá phòng phải lớn hơn 0", nil)
	}

	if room.MaxOccupancy < 1 {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Sức chứa phải lớn hơn 0", nil)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}

// isValidPhone kiểm tra số điện thoại hợp lệ
func isValidPhone(phone string) bool {
	phoneRegex := regexp.MustCompile(`^0\d{9,10}$`)
	return phoneRegex.MatchString(phone)
}
