package dto

import "time"

// CreateReviewRequest là DTO cho request tạo đánh giá
type CreateReviewRequest struct {
	BookingID   uint   `json:"bookingId" binding:"required"`
	Comment     string `json:"comment"`
	Star        int    `json:"star" binding:"required"`
	Cleanliness int    `json:"cleanliness"`
	Location    int    `json:"location"`
	Value       int    `json:"value"`
}

// UpdateReviewRequest là DTO cho request cập nhật đánh giá
type UpdateReviewRequest struct {
	ID          uint   `json:"id" binding:"required"`
	Comment     string `json:"comment"`
	Star        int    `json:"star"`
	Cleanliness int    `json:"cleanliness"`
	Location    int    `json:"location"`
	Value       int    `json:"value"`
}

// ReviewResponse là DTO cho response của đánh giá
type ReviewResponse struct {
	ID          uint      `json:"id"`
	BookingID   uint      `json:"bookingId"`
	PropertyID  uint      `json:"propertyId"`
	RoomID      uint      `json:"roomId"`
	Comment     string    `json:"comment"`
	Star        int       `json:"star"`
	Cleanliness int       `json:"cleanliness"`
	Location    int       `json:"location"`
	Value       int       `json:"value"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
	Guest       UserInfo  `json:"guest"`
}
