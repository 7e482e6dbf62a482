package controllers

import (
	"strconv"
	"time"

	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/errors"
	"homestay/middleware"
	"homestay/models"
	"homestay/policy"
	"homestay/response"
	"homestay/services"
	"homestay/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func convertRoom(r models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		ID:           r.RoomId,
		PropertyID:   r.PropertyID,
		OwnerID:      r.OwnerID,
		RoomName:     r.RoomName,
		Description:  r.Description,
		NumBed:       r.NumBed,
		MaxOccupancy: r.MaxOccupancy,
		PricePerDay:  r.PricePerDay,
		Amenities:    r.Amenities,
		Avatar:       r.Avatar,
		Img:          r.Img,
		IsActive:     r.IsActive,
	}
}

// GetAllRooms lấy danh sách phòng đang hoạt động, filter theo chỗ ở
func GetAllRooms(c *gin.Context) {
	propertyIDFilter := c.DefaultQuery("propertyId", "")

	tx := config.DB.Where("is_active = ?", true)
	if propertyIDFilter != "" {
		if propertyID, err := strconv.Atoi(propertyIDFilter); err == nil {
			tx = tx.Where("property_id = ?", propertyID)
		}
	}

	var rooms []models.Room
	if err := tx.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertRoom(room))
	}

	response.Success(c, roomResponses)
}

// GetOwnerRooms lấy toàn bộ phòng của chủ nhà đang đăng nhập,
// gồm cả phòng đã ngừng hoạt động
func GetOwnerRooms(c *gin.Context) {
	actor := middleware.GetActor(c)
	propertyIDFilter := c.DefaultQuery("propertyId", "")

	tx := config.DB.Where("owner_id = ?", actor.ID)
	if propertyIDFilter != "" {
		if propertyID, err := strconv.Atoi(propertyIDFilter); err == nil {
			tx = tx.Where("property_id = ?", propertyID)
		}
	}

	var rooms []models.Room
	if err := tx.Find(&rooms).Error; err != nil {
		response.ServerError(c)
		return
	}

	roomResponses := make([]dto.RoomResponse, 0, len(rooms))
	for _, room := range rooms {
		roomResponses = append(roomResponses, convertRoom(room))
	}

	response.Success(c, roomResponses)
}

// GetRoomDetail lấy chi tiết phòng kèm các khoảng ngày bị khóa
func GetRoomDetail(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.Preload("BlockedDates").Preload("Property").
		First(&room, roomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, room)
}

// CreateRoom tạo phòng mới trong một chỗ ở
func CreateRoom(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var property models.Property
	if err := config.DB.First(&property, input.PropertyID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := policy.Authorize(actor, policy.ActionRoomWrite, policy.Resource{OwnerID: property.OwnerID}); err != nil {
		response.FromError(c, err)
		return
	}

	room := models.Room{
		PropertyID:   input.PropertyID,
		OwnerID:      property.OwnerID,
		RoomName:     input.RoomName,
		Description:  input.Description,
		NumBed:       input.NumBed,
		MaxOccupancy: input.MaxOccupancy,
		PricePerDay:  input.PricePerDay,
		Amenities:    input.Amenities,
		Avatar:       input.Avatar,
		Img:          input.Img,
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.FromError(c, err)
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&room).Error; err != nil {
			return err
		}
		return tx.Model(&property).Update("total_rooms", gorm.Expr("total_rooms + 1")).Error
	})
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, convertRoom(room))
}

// UpdateRoom cập nhật thông tin phòng
func UpdateRoom(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := policy.Authorize(actor, policy.ActionRoomWrite, policy.Resource{OwnerID: room.OwnerID}); err != nil {
		response.FromError(c, err)
		return
	}

	if input.RoomName != "" {
		room.RoomName = input.RoomName
	}
	if input.Description != "" {
		room.Description = input.Description
	}
	if input.NumBed > 0 {
		room.NumBed = input.NumBed
	}
	if input.MaxOccupancy > 0 {
		room.MaxOccupancy = input.MaxOccupancy
	}
	// Đổi giá chỉ áp dụng cho booking mới, booking cũ giữ giá đã chốt
	if input.PricePerDay > 0 {
		room.PricePerDay = input.PricePerDay
	}
	if input.Amenities != nil {
		room.Amenities = input.Amenities
	}
	if input.Avatar != "" {
		room.Avatar = input.Avatar
	}
	if len(input.Img) > 0 {
		room.Img = input.Img
	}

	if err := validator.ValidateRoom(&room); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Save(&room).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, convertRoom(room))
}

// ChangeRoomStatus bật/tắt trạng thái hoạt động của phòng
func ChangeRoomStatus(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.ChangeRoomStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, input.ID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := policy.Authorize(actor, policy.ActionRoomWrite, policy.Resource{OwnerID: room.OwnerID}); err != nil {
		response.FromError(c, err)
		return
	}

	if err := config.DB.Model(&room).Update("is_active", input.IsActive).Error; err != nil {
		response.ServerError(c)
		return
	}

	room.IsActive = input.IsActive
	response.Success(c, convertRoom(room))
}

// BlockRoomDates khóa khoảng ngày của phòng (bảo trì).
// Từ chối nếu khoảng ngày đụng booking đang còn hiệu lực.
func BlockRoomDates(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.BlockDatesRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	fromDate, err := services.ParseBookingDate(input.FromDate)
	if err != nil {
		response.BadRequest(c, "Ngày bắt đầu không hợp lệ")
		return
	}
	toDate, err := services.ParseBookingDate(input.ToDate)
	if err != nil {
		response.BadRequest(c, "Ngày kết thúc không hợp lệ")
		return
	}
	if !fromDate.Before(toDate) {
		response.BadRequest(c, "Ngày bắt đầu phải trước ngày kết thúc")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, input.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := policy.Authorize(actor, policy.ActionRoomWrite, policy.Resource{OwnerID: room.OwnerID}); err != nil {
		response.FromError(c, err)
		return
	}

	var conflictCount int64
	err = config.DB.Model(&models.Booking{}).
		Where("room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
			room.RoomId,
			[]int{constants.BookingStatusPending, constants.BookingStatusConfirmed},
			toDate, fromDate).
		Count(&conflictCount).Error
	if err != nil {
		response.ServerError(c)
		return
	}
	if conflictCount > 0 {
		response.FromError(c, errors.NewAppError(errors.ErrCodeConflict, "Khoảng ngày đã có booking", nil))
		return
	}

	blocked := models.BlockedDate{
		RoomID:   room.RoomId,
		FromDate: fromDate,
		ToDate:   toDate,
		Reason:   input.Reason,
	}
	if err := config.DB.Create(&blocked).Error; err != nil {
		response.ServerError(c)
		return
	}

	response.Created(c, blocked)
}

// UnblockRoomDates mở khóa một khoảng ngày đã khóa trước đó
func UnblockRoomDates(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.UnblockDatesRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	var room models.Room
	if err := config.DB.First(&room, input.RoomID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if err := policy.Authorize(actor, policy.ActionRoomWrite, policy.Resource{OwnerID: room.OwnerID}); err != nil {
		response.FromError(c, err)
		return
	}

	result := config.DB.Where("id = ? AND room_id = ?", input.BlockedID, room.RoomId).
		Delete(&models.BlockedDate{})
	if result.Error != nil {
		response.ServerError(c)
		return
	}
	if result.RowsAffected == 0 {
		response.NotFound(c)
		return
	}

	response.Success(c, gin.H{"deleted": input.BlockedID})
}

// GetRoomBookedDates lấy các khoảng ngày đã có booking của phòng,
// dùng cho lịch hiển thị phía client
func GetRoomBookedDates(c *gin.Context) {
	roomID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	today := services.DateOnly(time.Now())

	var bookings []models.Booking
	err = config.DB.
		Where("room_id = ? AND status IN ? AND check_out_date > ?",
			roomID,
			[]int{constants.BookingStatusPending, constants.BookingStatusConfirmed},
			today).
		Order("check_in_date ASC").
		Find(&bookings).Error
	if err != nil {
		response.ServerError(c)
		return
	}

	ranges := make([]dto.BookedRangeResponse, 0, len(bookings))
	for _, booking := range bookings {
		ranges = append(ranges, dto.BookedRangeResponse{
			CheckInDate:  booking.CheckInDate.Format(bookingDateLayout),
			CheckOutDate: booking.CheckOutDate.Format(bookingDateLayout),
			Status:       booking.Status,
		})
	}

	response.Success(c, ranges)
}
