package services

import (
	"homestay/errors"

	"github.com/dgrijalva/jwt-go"
)

// GetUserIDFromToken xác thực token và lấy userID cùng role
func GetUserIDFromToken(tokenString string) (uint, int, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.NewAppError(errors.ErrCodeInvalidToken, "Phương thức ký token không hợp lệ", nil)
		}
		return secretKey, nil
	})
	if err != nil {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", err)
	}
	if !token.Valid {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Token không hợp lệ", nil)
	}

	if claims.UserInfo.UserID == 0 {
		return 0, 0, errors.NewAppError(errors.ErrCodeInvalidToken, "Không tìm thấy thông tin user trong token", nil)
	}

	return claims.UserInfo.UserID, claims.UserInfo.Role, nil
}
