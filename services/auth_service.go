package services

import (
	"fmt"
	"time"

	"homestay/config"
	"homestay/constants"
	"homestay/errors"
	"homestay/models"
	"homestay/validator"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

// UserInfo là thông tin user nhúng trong token
type UserInfo struct {
	UserID uint `json:"userid"`
	Role   int  `json:"role"`
}

type Claims struct {
	UserInfo UserInfo `json:"userinfo"`
	jwt.StandardClaims
}

var secretKey = []byte(config.GetEnv("SECRET_KEY_ACCESS_TOKEN"))

// HashPassword băm mật khẩu bằng bcrypt
func HashPassword(password string) (string, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedPassword), nil
}

// GenerateToken sinh access token chứa userID và role
func GenerateToken(userInfo UserInfo, expiryMinutes int) (string, error) {
	claims := &Claims{
		UserInfo: userInfo,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Minute * time.Duration(expiryMinutes)).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secretKey)
}

// GetUserByEmail lấy user theo email
func GetUserByEmail(email string) (models.User, error) {
	var user models.User
	result := config.DB.Where("email = ?", email).First(&user)
	if result.Error != nil {
		return user, result.Error
	}
	return user, nil
}

// CreateUser đăng ký user mới, role mặc định là khách hàng
func CreateUser(input models.User) (models.User, error) {
	if err := validator.ValidateUser(&input); err != nil {
		return models.User{}, err
	}

	if _, err := GetUserByEmail(input.Email); err == nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeUserExists,
			fmt.Sprintf("Email %s đã được sử dụng", input.Email), nil)
	}

	hashedPassword, err := HashPassword(input.Password)
	if err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeInternal, "Lỗi hệ thống", err)
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    hashedPassword,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
		Status:      constants.UserStatusActive,
	}

	if err := config.DB.Create(&user).Error; err != nil {
		return models.User{}, errors.NewAppError(errors.ErrCodeInternal, "Lỗi hệ thống", err)
	}

	return user, nil
}

// Login kiểm tra mật khẩu và trả về token
func Login(email, password string) (models.User, string, error) {
	user, err := GetUserByEmail(email)
	if err != nil {
		return models.User{}, "", errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy người dùng", nil)
	}

	if user.Status != constants.UserStatusActive {
		return models.User{}, "", errors.NewAppError(errors.ErrCodeForbidden, "Tài khoản đã bị khóa", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", errors.NewAppError(errors.ErrCodeInvalidPassword, "Mật khẩu không đúng", nil)
	}

	token, err := GenerateToken(UserInfo{UserID: user.ID, Role: user.Role}, 3*24*60)
	if err != nil {
		return models.User{}, "", errors.NewAppError(errors.ErrCodeInternal, "Lỗi hệ thống", err)
	}

	return user, token, nil
}
