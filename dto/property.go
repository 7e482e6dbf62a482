package dto

import "encoding/json"

// CreatePropertyRequest là DTO cho request tạo chỗ ở
type CreatePropertyRequest struct {
	Name        string          `json:"name" binding:"required"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Ward        string          `json:"ward"`
	District    string          `json:"district"`
	Province    string          `json:"province"`
	Img         json.RawMessage `json:"img"`
}

// UpdatePropertyRequest là DTO cho request cập nhật chỗ ở
type UpdatePropertyRequest struct {
	ID          uint            `json:"id" binding:"required"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Address     string          `json:"address"`
	Ward        string          `json:"ward"`
	District    string          `json:"district"`
	Province    string          `json:"province"`
	Img         json.RawMessage `json:"img"`
}

// ChangePropertyStatusRequest là DTO cho request đổi trạng thái chỗ ở
type ChangePropertyStatusRequest struct {
	ID       uint `json:"id" binding:"required"`
	IsActive bool `json:"isActive"`
}

// VerifyPropertyRequest là DTO cho request xác minh chỗ ở (admin)
type VerifyPropertyRequest struct {
	ID         uint `json:"id" binding:"required"`
	IsVerified bool `json:"isVerified"`
}

// PropertyResponse là DTO cho response của chỗ ở
type PropertyResponse struct {
	ID            uint            `json:"id"`
	OwnerID       uint            `json:"ownerId"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Address       string          `json:"address"`
	Ward          string          `json:"ward"`
	District      string          `json:"district"`
	Province      string          `json:"province"`
	Img           json.RawMessage `json:"img"`
	IsVerified    bool            `json:"isVerified"`
	IsActive      bool            `json:"isActive"`
	TotalRooms    int             `json:"totalRooms"`
	AverageRating float64         `json:"averageRating"`
	TotalReviews  int             `json:"totalReviews"`
}
