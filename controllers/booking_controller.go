package controllers

import (
	"log"
	"strconv"
	"time"

	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/middleware"
	"homestay/models"
	"homestay/response"
	"homestay/services"
	"homestay/services/notification"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const bookingDateLayout = "02/01/2006"

type BookingController struct {
	db       *gorm.DB
	rdb      *redis.Client
	svc      *services.BookingService
	notifier notification.Service
}

func NewBookingController(db *gorm.DB, rdb *redis.Client, notifier notification.Service) *BookingController {
	return &BookingController{
		db:       db,
		rdb:      rdb,
		svc:      services.NewBookingService(services.BookingServiceOptions{DB: db}),
		notifier: notifier,
	}
}

func convertBooking(b models.Booking) dto.BookingResponse {
	return dto.BookingResponse{
		ID:               b.ID,
		ConfirmationCode: b.ConfirmationCode,
		Guest: dto.ActorResponse{
			ID:          b.Guest.ID,
			Name:        b.Guest.Name,
			Email:       b.Guest.Email,
			PhoneNumber: b.Guest.PhoneNumber,
		},
		Property: dto.BookingPropertyResponse{
			ID:       b.Property.ID,
			Name:     b.Property.Name,
			Address:  b.Property.Address,
			Ward:     b.Property.Ward,
			District: b.Property.District,
			Province: b.Property.Province,
		},
		Room: dto.BookingRoomResponse{
			ID:          b.Room.RoomId,
			PropertyID:  b.Room.PropertyID,
			RoomName:    b.Room.RoomName,
			PricePerDay: b.Room.PricePerDay,
		},
		CheckInDate:         b.CheckInDate.Format(bookingDateLayout),
		CheckOutDate:        b.CheckOutDate.Format(bookingDateLayout),
		NumberOfGuests:      b.NumberOfGuests,
		TotalDays:           b.TotalDays,
		PricePerDay:         b.PricePerDay,
		TotalAmount:         b.TotalAmount,
		Taxes:               b.Taxes,
		DiscountAmount:      b.DiscountAmount,
		FinalAmount:         b.FinalAmount,
		PaymentStatus:       b.PaymentStatus,
		Status:              b.Status,
		CancellationReason:  b.CancellationReason,
		CancellationDate:    b.CancellationDate,
		CancellationCharges: b.CancellationCharges,
		RefundAmount:        b.RefundAmount,
		SpecialRequests:     b.SpecialRequests,
		CreatedAt:           b.CreatedAt,
		UpdatedAt:           b.UpdatedAt,
	}
}

// invalidateCache xóa cache danh sách booking của khách và chủ nhà
func (ctrl *BookingController) invalidateCache(guestID, ownerID uint) {
	if ctrl.rdb == nil {
		return
	}
	for _, key := range []string{services.BookingsCacheKey(guestID), services.BookingsCacheKey(ownerID)} {
		if err := services.DeleteFromRedis(config.Ctx, ctrl.rdb, key); err != nil {
			log.Printf("Lỗi khi xóa cache booking: %v", err)
		}
	}
}

// GetBookings lấy danh sách booking theo vai trò:
// khách thấy booking mình đặt, chủ nhà thấy booking của các phòng mình, admin thấy tất cả.
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	actor := middleware.GetActor(c)

	statusFilter := c.DefaultQuery("status", "")
	codeFilter := c.DefaultQuery("confirmationCode", "")
	fromDateFilter := c.DefaultQuery("fromDate", "")

	page := 0
	limit := 10
	if p, err := strconv.Atoi(c.DefaultQuery("page", "0")); err == nil && p >= 0 {
		page = p
	}
	if l, err := strconv.Atoi(c.DefaultQuery("limit", "10")); err == nil && l > 0 {
		limit = l
	}

	noFilter := statusFilter == "" && codeFilter == "" && fromDateFilter == "" && page == 0

	// Cache chỉ áp dụng cho trang đầu không filter
	if noFilter && ctrl.rdb != nil {
		var cached []dto.BookingResponse
		if err := services.GetFromRedis(config.Ctx, ctrl.rdb, services.BookingsCacheKey(actor.ID), &cached); err == nil && len(cached) > 0 {
			response.SuccessWithPagination(c, cached, page, limit, len(cached))
			return
		}
	}

	tx := ctrl.db.Model(&models.Booking{}).
		Preload("Guest").Preload("Room").Preload("Property")

	switch actor.Role {
	case constants.RoleCustomer:
		tx = tx.Where("guest_id = ?", actor.ID)
	case constants.RoleHouseOwner:
		tx = tx.Where("owner_id = ?", actor.ID)
	}

	if statusFilter != "" {
		if status, err := strconv.Atoi(statusFilter); err == nil {
			tx = tx.Where("status = ?", status)
		}
	}
	if codeFilter != "" {
		tx = tx.Where("confirmation_code = ?", codeFilter)
	}
	if fromDateFilter != "" {
		if fromDate, err := time.Parse(bookingDateLayout, fromDateFilter); err == nil {
			tx = tx.Where("check_in_date >= ?", fromDate)
		}
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		response.ServerError(c)
		return
	}

	var bookings []models.Booking
	if err := tx.Order("created_at DESC").Offset(page * limit).Limit(limit).Find(&bookings).Error; err != nil {
		response.ServerError(c)
		return
	}

	bookingResponses := make([]dto.BookingResponse, 0, len(bookings))
	for _, booking := range bookings {
		bookingResponses = append(bookingResponses, convertBooking(booking))
	}

	if noFilter && ctrl.rdb != nil {
		if err := services.SetToRedis(config.Ctx, ctrl.rdb, services.BookingsCacheKey(actor.ID), bookingResponses, 5*time.Minute); err != nil {
			log.Printf("Lỗi khi lưu danh sách booking vào Redis: %v", err)
		}
	}

	response.SuccessWithPagination(c, bookingResponses, page, limit, int(total))
}

// GetBookingDetail lấy chi tiết một booking.
// Chỉ khách đặt, chủ nhà liên quan hoặc admin được xem.
func (ctrl *BookingController) GetBookingDetail(c *gin.Context) {
	actor := middleware.GetActor(c)

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var booking models.Booking
	if err := ctrl.db.Preload("Guest").Preload("Room").Preload("Property").
		First(&booking, bookingID).Error; err != nil {
		response.NotFound(c)
		return
	}

	if actor.Role != constants.RoleAdmin && booking.GuestID != actor.ID && booking.OwnerID != actor.ID {
		response.Forbidden(c)
		return
	}

	response.Success(c, convertBooking(booking))
}

// CreateBooking tạo booking mới
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctrl.svc.Create(c.Request.Context(), input, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.invalidateCache(booking.GuestID, booking.OwnerID)
	if ctrl.notifier != nil {
		if err := ctrl.notifier.SendMessage(notification.BookingCreatedMessage(booking.ID, booking.ConfirmationCode)); err != nil {
			log.Printf("Lỗi khi gửi thông báo booking mới: %v", err)
		}
	}

	response.Created(c, convertBooking(*booking))
}

// ChangeBookingStatus cập nhật trạng thái booking (không dùng để hủy)
func (ctrl *BookingController) ChangeBookingStatus(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctrl.svc.UpdateStatus(c.Request.Context(), input.ID, input.Status, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.invalidateCache(booking.GuestID, booking.OwnerID)
	if ctrl.notifier != nil && booking.Status == constants.BookingStatusCompleted {
		if err := ctrl.notifier.SendMessage(notification.BookingCompletedMessage(booking.ID)); err != nil {
			log.Printf("Lỗi khi gửi thông báo hoàn thành booking: %v", err)
		}
	}

	response.Success(c, convertBooking(*booking))
}

// CancelBooking hủy booking, tính phí hủy và tiền hoàn theo chính sách
func (ctrl *BookingController) CancelBooking(c *gin.Context) {
	actor := middleware.GetActor(c)

	bookingID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "ID không hợp lệ")
		return
	}

	var input dto.CancelBookingRequest
	if err := c.ShouldBindJSON(&input); err != nil && err.Error() != "EOF" {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctrl.svc.Cancel(c.Request.Context(), uint(bookingID), input.Reason, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.invalidateCache(booking.GuestID, booking.OwnerID)
	if ctrl.notifier != nil {
		if err := ctrl.notifier.SendMessage(notification.BookingCancelledMessage(booking.ID, booking.RefundAmount)); err != nil {
			log.Printf("Lỗi khi gửi thông báo hủy booking: %v", err)
		}
	}

	response.Success(c, convertBooking(*booking))
}

// ChangePaymentStatus cập nhật trạng thái thanh toán của booking
func (ctrl *BookingController) ChangePaymentStatus(c *gin.Context) {
	actor := middleware.GetActor(c)

	var input dto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ")
		return
	}

	booking, err := ctrl.svc.UpdatePaymentStatus(c.Request.Context(), input.ID, input.PaymentStatus, actor)
	if err != nil {
		response.FromError(c, err)
		return
	}

	ctrl.invalidateCache(booking.GuestID, booking.OwnerID)
	response.Success(c, convertBooking(*booking))
}
