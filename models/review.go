package models

import "time"

type Review struct {
	ID         uint   `json:"id" gorm:"primaryKey"`
	BookingID  uint   `json:"bookingId" gorm:"uniqueIndex"` // Mỗi booking chỉ có 1 đánh giá
	GuestID    uint   `json:"guestId"`
	OwnerID    uint   `json:"ownerId"`
	RoomID     uint   `json:"roomId"`
	PropertyID uint   `json:"propertyId" gorm:"index"`
	Comment    string `json:"comment"`
	Star       int    `json:"star"`

	// Điểm chi tiết theo hạng mục
	Cleanliness int `json:"cleanliness"`
	Location    int `json:"location"`
	Value       int `json:"value"`

	CreateAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdateAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
	Guest    User      `json:"guest" gorm:"foreignKey:GuestID"`
}
