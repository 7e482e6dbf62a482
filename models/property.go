package models

import (
	"encoding/json"
	"time"
)

type Property struct {
	ID            uint            `json:"id" gorm:"primaryKey"`
	OwnerID       uint            `json:"ownerId"`
	Owner         User            `json:"owner" gorm:"foreignKey:OwnerID"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Address       string          `json:"address"`
	Ward          string          `json:"ward"`
	District      string          `json:"district"`
	Province      string          `json:"province"`
	Img           json.RawMessage `json:"img" gorm:"type:json"`
	IsVerified    bool            `json:"isVerified" gorm:"default:false"`
	IsActive      bool            `json:"isActive" gorm:"default:true"`
	TotalRooms    int             `json:"totalRooms" gorm:"default:0"`
	AverageRating float64         `json:"averageRating" gorm:"default:0"`
	TotalReviews  int             `json:"totalReviews" gorm:"default:0"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updatedAt"`
	Rooms         []Room          `json:"rooms,omitempty" gorm:"foreignKey:PropertyID"`
	Reviews       []Review        `json:"reviews,omitempty" gorm:"foreignKey:PropertyID"`
}
