package services

import (
	"context"
	stderrors "errors"
	"time"

	"homestay/config"
	"homestay/constants"
	"homestay/dto"
	"homestay/errors"
	"homestay/models"
	"homestay/policy"
	"homestay/services/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const confirmationCodeRetries = 5

// BookingServiceOptions chứa các dependency của BookingService
type BookingServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// BookingService xử lý toàn bộ vòng đời booking: tạo, đổi trạng thái, hủy.
// Mỗi thao tác là một transaction; tạo booking khóa dòng room (FOR UPDATE)
// để hai request trùng khoảng ngày trên cùng phòng không thể cùng thành công.
type BookingService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewBookingService(opts BookingServiceOptions) *BookingService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &BookingService{
		db:     opts.DB,
		logger: l,
	}
}

// wrapDBError phân loại lỗi hạ tầng: timeout/hủy request là lỗi tạm thời
// (UNAVAILABLE, gọi lại được), còn lại là lỗi hệ thống.
func wrapDBError(err error) error {
	if stderrors.Is(err, context.DeadlineExceeded) || stderrors.Is(err, context.Canceled) {
		return errors.NewAppError(errors.ErrCodeUnavailable, "Hệ thống đang bận, vui lòng thử lại", err)
	}
	return errors.NewAppError(errors.ErrCodeInternal, "Lỗi hệ thống", err)
}

// Create tạo booking mới cho khách.
// Toàn bộ kiểm tra xung đột và ghi booking nằm trong một transaction,
// hoặc booking và mã xác nhận cùng được lưu, hoặc không có gì được lưu.
func (s *BookingService) Create(ctx context.Context, req dto.CreateBookingRequest, actor policy.Actor) (*models.Booking, error) {
	if err := policy.Authorize(actor, policy.ActionBookingCreate, policy.Resource{}); err != nil {
		return nil, err
	}

	checkIn, err := ParseBookingDate(req.CheckInDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidInput, "Ngày nhận phòng không hợp lệ", err)
	}
	checkOut, err := ParseBookingDate(req.CheckOutDate)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidInput, "Ngày trả phòng không hợp lệ", err)
	}
	if err := ValidateBookingDates(checkIn, checkOut, time.Now()); err != nil {
		return nil, err
	}
	if req.NumberOfGuests < 1 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidInput, "Số khách phải lớn hơn 0", nil)
	}

	var booking models.Booking

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Khóa dòng room: các request tạo booking trùng phòng phải xếp hàng
		// qua điểm này, kiểm tra xung đột rồi mới ghi
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, req.RoomID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy phòng", nil)
			}
			return wrapDBError(err)
		}

		if !room.IsActive {
			return errors.NewAppError(errors.ErrCodeUnavailable, "Phòng đã ngừng hoạt động", nil)
		}

		var property models.Property
		if err := tx.First(&property, room.PropertyID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy chỗ ở", nil)
			}
			return wrapDBError(err)
		}
		if !property.IsActive {
			return errors.NewAppError(errors.ErrCodeUnavailable, "Chỗ ở đã ngừng hoạt động", nil)
		}

		// Khoảng ngày bảo trì, so theo khoảng nửa mở [from, to)
		var blockedCount int64
		if err := tx.Model(&models.BlockedDate{}).
			Where("room_id = ? AND from_date < ? AND to_date > ?", room.RoomId, checkOut, checkIn).
			Count(&blockedCount).Error; err != nil {
			return wrapDBError(err)
		}
		if blockedCount > 0 {
			return errors.NewAppError(errors.ErrCodeUnavailable,
				"Phòng đang bảo trì trong khoảng thời gian này", nil)
		}

		// Booking đang hiệu lực (Pending/Confirmed) trùng khoảng ngày
		var conflictCount int64
		if err := tx.Model(&models.Booking{}).
			Where("room_id = ? AND status IN ? AND check_in_date < ? AND check_out_date > ?",
				room.RoomId,
				[]int{constants.BookingStatusPending, constants.BookingStatusConfirmed},
				checkOut, checkIn).
			Count(&conflictCount).Error; err != nil {
			return wrapDBError(err)
		}
		if conflictCount > 0 {
			return errors.NewAppError(errors.ErrCodeUnavailable,
				"Phòng đã được đặt trong khoảng thời gian này", nil)
		}

		amounts := ComputeBookingAmounts(checkIn, checkOut, room.PricePerDay, config.Booking)

		code, err := s.uniqueConfirmationCode(tx)
		if err != nil {
			return err
		}

		booking = models.Booking{
			RoomID:           room.RoomId,
			PropertyID:       room.PropertyID,
			GuestID:          actor.ID,
			OwnerID:          room.OwnerID,
			CheckInDate:      checkIn,
			CheckOutDate:     checkOut,
			NumberOfGuests:   req.NumberOfGuests,
			GuestDetails:     req.GuestDetails,
			TotalDays:        amounts.TotalDays,
			PricePerDay:      amounts.PricePerDay,
			TotalAmount:      amounts.TotalAmount,
			Taxes:            amounts.Taxes,
			DiscountAmount:   amounts.DiscountAmount,
			FinalAmount:      amounts.FinalAmount,
			PaymentStatus:    constants.PaymentStatusPending,
			Status:           constants.BookingStatusPending,
			SpecialRequests:  req.SpecialRequests,
			ConfirmationCode: code,
		}

		if err := tx.Create(&booking).Error; err != nil {
			// Thua race ở tầng storage dù đã khóa: trả CONFLICT để client thử lại
			return errors.NewAppError(errors.ErrCodeConflict, "Xung đột dữ liệu, vui lòng thử lại", err)
		}

		return nil
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return nil, txErr
		}
		return nil, wrapDBError(txErr)
	}

	s.logger.Info("Tạo booking %d cho phòng %d, mã %s", booking.ID, booking.RoomID, booking.ConfirmationCode)
	return &booking, nil
}

// uniqueConfirmationCode sinh mã xác nhận và kiểm tra trùng trong DB,
// thử lại tối đa confirmationCodeRetries lần
func (s *BookingService) uniqueConfirmationCode(tx *gorm.DB) (string, error) {
	for i := 0; i < confirmationCodeRetries; i++ {
		code, err := GenerateConfirmationCode()
		if err != nil {
			return "", errors.NewAppError(errors.ErrCodeInternal, "Không thể sinh mã xác nhận", err)
		}

		var count int64
		if err := tx.Model(&models.Booking{}).
			Where("confirmation_code = ?", code).
			Count(&count).Error; err != nil {
			return "", wrapDBError(err)
		}
		if count == 0 {
			return code, nil
		}
	}
	return "", errors.NewAppError(errors.ErrCodeInternal, "Không thể sinh mã xác nhận không trùng", nil)
}

// UpdateStatus chuyển trạng thái booking theo bảng chuyển trạng thái.
// Chỉ chủ phòng hoặc admin được gọi; không thay đổi số tiền.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID uint, newStatus int, actor policy.Actor) (*models.Booking, error) {
	if newStatus == constants.BookingStatusCancelled {
		// Hủy phải đi qua Cancel để ghi nhận lý do và tính phí hoàn
		return nil, errors.NewAppError(errors.ErrCodeInvalidTransition,
			"Hủy đơn phải dùng thao tác hủy", nil)
	}

	var booking models.Booking

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đơn đặt phòng", nil)
			}
			return wrapDBError(err)
		}

		if err := policy.Authorize(actor, policy.ActionBookingStatus,
			policy.Resource{OwnerID: booking.OwnerID}); err != nil {
			return err
		}

		if err := booking.Transition(newStatus); err != nil {
			return err
		}

		if err := tx.Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Update("status", booking.Status).Error; err != nil {
			return wrapDBError(err)
		}
		return nil
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return nil, txErr
		}
		return nil, wrapDBError(txErr)
	}

	return &booking, nil
}

// Cancel hủy booking, ghi nhận lý do và tính phí hủy/tiền hoàn theo
// chính sách cấu hình. Khách của đơn, chủ phòng hoặc admin được hủy.
func (s *BookingService) Cancel(ctx context.Context, bookingID uint, reason string, actor policy.Actor) (*models.Booking, error) {
	var booking models.Booking

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&booking, bookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đơn đặt phòng", nil)
			}
			return wrapDBError(err)
		}

		if err := policy.Authorize(actor, policy.ActionBookingCancel,
			policy.Resource{OwnerID: booking.OwnerID, GuestID: booking.GuestID}); err != nil {
			return err
		}

		if err := booking.Transition(constants.BookingStatusCancelled); err != nil {
			return err
		}

		now := time.Now()
		amounts := ComputeCancellation(booking.FinalAmount, booking.CheckInDate, now, config.Booking)

		booking.CancellationReason = reason
		booking.CancellationDate = &now
		booking.CancellationCharges = amounts.Charges
		booking.RefundAmount = amounts.Refund
		if booking.PaymentStatus == constants.PaymentStatusPaid && amounts.Refund > 0 {
			booking.PaymentStatus = constants.PaymentStatusRefunded
		}

		if err := tx.Save(&booking).Error; err != nil {
			return wrapDBError(err)
		}
		return nil
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return nil, txErr
		}
		return nil, wrapDBError(txErr)
	}

	s.logger.Info("Hủy booking %d, phí hủy %.0f, hoàn %.0f", booking.ID, booking.CancellationCharges, booking.RefundAmount)
	return &booking, nil
}

// UpdatePaymentStatus cập nhật trạng thái thanh toán, vòng đời độc lập
// với trạng thái booking. Chủ phòng hoặc admin được gọi.
func (s *BookingService) UpdatePaymentStatus(ctx context.Context, bookingID uint, paymentStatus int, actor policy.Actor) (*models.Booking, error) {
	if paymentStatus < constants.PaymentStatusPending || paymentStatus > constants.PaymentStatusFailed {
		return nil, errors.NewAppError(errors.ErrCodeInvalidInput, "Trạng thái thanh toán không hợp lệ", nil)
	}

	var booking models.Booking
	if err := s.db.WithContext(ctx).First(&booking, bookingID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đơn đặt phòng", nil)
		}
		return nil, wrapDBError(err)
	}

	if err := policy.Authorize(actor, policy.ActionBookingStatus,
		policy.Resource{OwnerID: booking.OwnerID}); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Model(&models.Booking{}).
		Where("id = ?", booking.ID).
		Update("payment_status", paymentStatus).Error; err != nil {
		return nil, wrapDBError(err)
	}

	booking.PaymentStatus = paymentStatus
	return &booking, nil
}
