package dto

import (
	"encoding/json"
	"time"
)

// CreateBookingRequest là DTO cho request tạo booking.
// Ngày theo định dạng dd/mm/yyyy.
type CreateBookingRequest struct {
	RoomID          uint            `json:"roomId" binding:"required"`
	CheckInDate     string          `json:"checkInDate" binding:"required"`
	CheckOutDate    string          `json:"checkOutDate" binding:"required"`
	NumberOfGuests  int             `json:"numberOfGuests" binding:"required"`
	SpecialRequests string          `json:"specialRequests,omitempty"`
	GuestDetails    json.RawMessage `json:"guestDetails,omitempty"`
}

// UpdateBookingStatusRequest là DTO cho request cập nhật trạng thái booking
type UpdateBookingStatusRequest struct {
	ID     uint `json:"id" binding:"required"`
	Status int  `json:"status"`
}

// CancelBookingRequest là DTO cho request hủy booking
type CancelBookingRequest struct {
	Reason string `json:"reason,omitempty"`
}

// UpdatePaymentStatusRequest là DTO cho request cập nhật trạng thái thanh toán
type UpdatePaymentStatusRequest struct {
	ID            uint `json:"id" binding:"required"`
	PaymentStatus int  `json:"paymentStatus"`
}

// BookingRoomResponse là DTO cho thông tin phòng trong booking
type BookingRoomResponse struct {
	ID          uint   `json:"id"`
	PropertyID  uint   `json:"propertyId"`
	RoomName    string `json:"roomName"`
	PricePerDay int    `json:"pricePerDay"`
}

// BookingPropertyResponse là DTO cho thông tin chỗ ở trong booking
type BookingPropertyResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Address  string `json:"address"`
	Ward     string `json:"ward"`
	District string `json:"district"`
	Province string `json:"province"`
}

// BookingResponse là DTO cho response của booking
type BookingResponse struct {
	ID                  uint                    `json:"id"`
	ConfirmationCode    string                  `json:"confirmationCode"`
	Guest               ActorResponse           `json:"guest"`
	Property            BookingPropertyResponse `json:"property"`
	Room                BookingRoomResponse     `json:"room"`
	CheckInDate         string                  `json:"checkInDate"`
	CheckOutDate        string                  `json:"checkOutDate"`
	NumberOfGuests      int                     `json:"numberOfGuests"`
	TotalDays           int                     `json:"totalDays"`
	PricePerDay         int                     `json:"pricePerDay"`
	TotalAmount         float64                 `json:"totalAmount"`
	Taxes               float64                 `json:"taxes"`
	DiscountAmount      float64                 `json:"discountAmount"`
	FinalAmount         float64                 `json:"finalAmount"`
	PaymentStatus       int                     `json:"paymentStatus"`
	Status              int                     `json:"status"`
	CancellationReason  string                  `json:"cancellationReason,omitempty"`
	CancellationDate    *time.Time              `json:"cancellationDate,omitempty"`
	CancellationCharges float64                 `json:"cancellationCharges"`
	RefundAmount        float64                 `json:"refundAmount"`
	SpecialRequests     string                  `json:"specialRequests,omitempty"`
	CreatedAt           time.Time               `json:"createdAt"`
	UpdatedAt           time.Time               `json:"updatedAt"`
}
