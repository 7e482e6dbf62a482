package dto

// RegisterRequest là DTO cho request đăng ký
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Role        int    `json:"role"`
}

// LoginRequest là DTO cho request đăng nhập
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse là DTO cho response đăng nhập
type LoginResponse struct {
	AccessToken string        `json:"accessToken"`
	User        ActorResponse `json:"user"`
	Role        int           `json:"role"`
}
