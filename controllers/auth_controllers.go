package controllers

import (
	"homestay/config"
	"homestay/dto"
	"homestay/middleware"
	"homestay/models"
	"homestay/response"
	"homestay/services"

	"github.com/gin-gonic/gin"
)

// Register đăng ký tài khoản mới
func Register(c *gin.Context) {
	var input dto.RegisterRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user := models.User{
		Name:        input.Name,
		Email:       input.Email,
		Password:    input.Password,
		PhoneNumber: input.PhoneNumber,
		Role:        input.Role,
	}

	created, err := services.CreateUser(user)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, dto.ActorResponse{
		ID:          created.ID,
		Name:        created.Name,
		Email:       created.Email,
		PhoneNumber: created.PhoneNumber,
	})
}

// Login đăng nhập, trả về access token
func Login(c *gin.Context) {
	var input dto.LoginRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	user, token, err := services.Login(input.Email, input.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, dto.LoginResponse{
		AccessToken: token,
		User: dto.ActorResponse{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			PhoneNumber: user.PhoneNumber,
		},
		Role: user.Role,
	})
}

// Logout xóa cookie phía client, token hết hiệu lực theo thời gian sống
func Logout(c *gin.Context) {
	cookies := c.Request.Cookies()
	for _, cookie := range cookies {
		c.SetCookie(cookie.Name, "", -1, "/", "", cookie.Secure, cookie.HttpOnly)
	}

	response.Success(c, nil)
}

// GetProfile lấy thông tin user đang đăng nhập
func GetProfile(c *gin.Context) {
	actor := middleware.GetActor(c)

	var user models.User
	if err := config.DB.First(&user, actor.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Avatar:      user.Avatar,
		Role:        user.Role,
		Status:      user.Status,
		CreatedAt:   user.CreatedAt,
	})
}
