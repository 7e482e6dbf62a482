package models

import (
	"encoding/json"
	"time"
)

type Booking struct {
	ID             uint            `json:"id" gorm:"primaryKey"`
	RoomID         uint            `json:"roomId" gorm:"index:idx_room_dates"`
	Room           Room            `json:"room" gorm:"foreignKey:RoomID"`
	PropertyID     uint            `json:"propertyId"`
	Property       Property        `json:"property" gorm:"foreignKey:PropertyID"`
	GuestID        uint            `json:"guestId" gorm:"index"`
	Guest          User            `json:"guest" gorm:"foreignKey:GuestID"`
	OwnerID        uint            `json:"ownerId" gorm:"index"`
	CheckInDate    time.Time       `json:"checkInDate" gorm:"index:idx_room_dates"`
	CheckOutDate   time.Time       `json:"checkOutDate" gorm:"index:idx_room_dates"`
	NumberOfGuests int             `json:"numberOfGuests"`
	GuestDetails   json.RawMessage `json:"guestDetails,omitempty" gorm:"type:json"`

	TotalDays      int     `json:"totalDays"`
	PricePerDay    int     `json:"pricePerDay"`    // Giá 1 đêm tại thời điểm đặt, không tính lại
	TotalAmount    float64 `json:"totalAmount"`    // TotalDays * PricePerDay
	Taxes          float64 `json:"taxes"`          // Thuế cộng thêm
	DiscountAmount float64 `json:"discountAmount"` // Giảm giá
	FinalAmount    float64 `json:"finalAmount"`    // Tổng phải trả

	PaymentStatus int `json:"paymentStatus" gorm:"default:0"`
	Status        int `json:"status" gorm:"default:0;index"`

	CancellationReason  string     `json:"cancellationReason,omitempty"`
	CancellationDate    *time.Time `json:"cancellationDate,omitempty"`
	CancellationCharges float64    `json:"cancellationCharges"`
	RefundAmount        float64    `json:"refundAmount"`

	SpecialRequests  string    `json:"specialRequests,omitempty"`
	ConfirmationCode string    `json:"confirmationCode" gorm:"uniqueIndex"`
	CreatedAt        time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt        time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}
