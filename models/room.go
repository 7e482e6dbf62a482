package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

type Room struct {
	RoomId       uint            `json:"id" gorm:"primaryKey"`
	PropertyID   uint            `json:"propertyId"`
	OwnerID      uint            `json:"ownerId"`
	RoomName     string          `json:"roomName"`
	Description  string          `json:"description"`
	NumBed       int             `json:"numBed"`
	MaxOccupancy int             `json:"maxOccupancy"`
	PricePerDay  int             `json:"pricePerDay"`
	Amenities    pq.StringArray  `json:"amenities" gorm:"type:text[]"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img" gorm:"type:json"`
	IsActive     bool            `json:"isActive" gorm:"default:true"`
	CreatedAt    time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Property     Property        `json:"property" gorm:"foreignKey:PropertyID"`
	BlockedDates []BlockedDate   `json:"blockedDates,omitempty" gorm:"foreignKey:RoomID"`
}

// BlockedDate là khoảng ngày phòng bị khóa (bảo trì), nửa mở [FromDate, ToDate)
type BlockedDate struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	RoomID   uint      `json:"roomId"`
	FromDate time.Time `json:"fromDate"`
	ToDate   time.Time `json:"toDate"`
	Reason   string    `json:"reason"`
}

func (r *Room) ValidatePrice() error {
	if r.PricePerDay <= 0 {
		return fmt.Errorf("invalid price: %d, must be positive", r.PricePerDay)
	}
	return nil
}
