package dto

import "encoding/json"

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	PropertyID   uint            `json:"propertyId" binding:"required"`
	RoomName     string          `json:"roomName" binding:"required"`
	Description  string          `json:"description"`
	NumBed       int             `json:"numBed"`
	MaxOccupancy int             `json:"maxOccupancy"`
	PricePerDay  int             `json:"pricePerDay" binding:"required"`
	Amenities    []string        `json:"amenities"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img"`
}

// UpdateRoomRequest là DTO cho request cập nhật phòng
type UpdateRoomRequest struct {
	ID           uint            `json:"id" binding:"required"`
	RoomName     string          `json:"roomName"`
	Description  string          `json:"description"`
	NumBed       int             `json:"numBed"`
	MaxOccupancy int             `json:"maxOccupancy"`
	PricePerDay  int             `json:"pricePerDay"`
	Amenities    []string        `json:"amenities"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img"`
}

// ChangeRoomStatusRequest là DTO cho request đổi trạng thái phòng
type ChangeRoomStatusRequest struct {
	ID       uint `json:"id" binding:"required"`
	IsActive bool `json:"isActive"`
}

// BlockDatesRequest là DTO cho request khóa khoảng ngày của phòng.
// Khoảng nửa mở [fromDate, toDate), định dạng dd/mm/yyyy.
type BlockDatesRequest struct {
	RoomID   uint   `json:"roomId" binding:"required"`
	FromDate string `json:"fromDate" binding:"required"`
	ToDate   string `json:"toDate" binding:"required"`
	Reason   string `json:"reason"`
}

// UnblockDatesRequest là DTO cho request mở khóa khoảng ngày
type UnblockDatesRequest struct {
	RoomID    uint `json:"roomId" binding:"required"`
	BlockedID uint `json:"blockedId" binding:"required"`
}

// RoomResponse là DTO cho response của phòng
type RoomResponse struct {
	ID           uint            `json:"id"`
	PropertyID   uint            `json:"propertyId"`
	OwnerID      uint            `json:"ownerId"`
	RoomName     string          `json:"roomName"`
	Description  string          `json:"description"`
	NumBed       int             `json:"numBed"`
	MaxOccupancy int             `json:"maxOccupancy"`
	PricePerDay  int             `json:"pricePerDay"`
	Amenities    []string        `json:"amenities"`
	Avatar       string          `json:"avatar"`
	Img          json.RawMessage `json:"img"`
	IsActive     bool            `json:"isActive"`
}

// BookedRangeResponse là DTO cho khoảng ngày đã có booking của phòng
type BookedRangeResponse struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
	Status       int    `json:"status"`
}
