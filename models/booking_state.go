package models

import (
	"homestay/constants"
	"homestay/errors"
)

// transition là một cạnh hợp lệ trong máy trạng thái booking.
type transition struct {
	From int
	To   int
}

// transitionTable liệt kê toàn bộ chuyển trạng thái được phép.
// Cancelled, Completed, NoShow là trạng thái kết thúc, không có cạnh đi ra.
var transitionTable = []transition{
	{From: constants.BookingStatusPending, To: constants.BookingStatusConfirmed},
	{From: constants.BookingStatusPending, To: constants.BookingStatusCancelled},
	{From: constants.BookingStatusConfirmed, To: constants.BookingStatusCompleted},
	{From: constants.BookingStatusConfirmed, To: constants.BookingStatusCancelled},
	{From: constants.BookingStatusConfirmed, To: constants.BookingStatusNoShow},
}

var statusNames = map[int]string{
	constants.BookingStatusPending:   "Pending",
	constants.BookingStatusConfirmed: "Confirmed",
	constants.BookingStatusCompleted: "Completed",
	constants.BookingStatusCancelled: "Cancelled",
	constants.BookingStatusNoShow:    "NoShow",
}

// BookingStatusName trả về tên trạng thái booking
func BookingStatusName(status int) string {
	if name, ok := statusNames[status]; ok {
		return name
	}
	return "Unknown"
}

// IsValidBookingStatus kiểm tra giá trị trạng thái có thuộc tập đóng không
func IsValidBookingStatus(status int) bool {
	_, ok := statusNames[status]
	return ok
}

// IsTerminalStatus kiểm tra trạng thái kết thúc
func IsTerminalStatus(status int) bool {
	return status == constants.BookingStatusCancelled ||
		status == constants.BookingStatusCompleted ||
		status == constants.BookingStatusNoShow
}

// CanTransition kiểm tra chuyển trạng thái from -> to có trong bảng không
func CanTransition(from, to int) bool {
	for _, t := range transitionTable {
		if t.From == from && t.To == to {
			return true
		}
	}
	return false
}

// Transition áp dụng chuyển trạng thái lên booking, trả lỗi nếu không hợp lệ
func (b *Booking) Transition(to int) error {
	if !IsValidBookingStatus(to) {
		return errors.NewAppError(errors.ErrCodeInvalidInput,
			"Trạng thái không hợp lệ", nil)
	}
	if b.Status == constants.BookingStatusCancelled && to == constants.BookingStatusCancelled {
		return errors.NewAppError(errors.ErrCodeAlreadyCancelled,
			"Đơn đặt phòng đã bị hủy trước đó", nil)
	}
	if !CanTransition(b.Status, to) {
		return errors.NewAppError(errors.ErrCodeInvalidTransition,
			"Không thể chuyển trạng thái từ "+BookingStatusName(b.Status)+" sang "+BookingStatusName(to), nil)
	}
	b.Status = to
	return nil
}
