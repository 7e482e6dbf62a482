package notification

import (
	"fmt"

	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// BookingCreatedMessage tạo thông báo khi có booking mới
func BookingCreatedMessage(bookingID uint, confirmationCode string) string {
	return fmt.Sprintf("🔔 Đơn đặt phòng mới #%d, mã xác nhận %s.", bookingID, confirmationCode)
}

// BookingCancelledMessage tạo thông báo khi booking bị hủy
func BookingCancelledMessage(bookingID uint, refund float64) string {
	return fmt.Sprintf("🔔 Đơn đặt phòng #%d đã bị hủy, hoàn %.0f.", bookingID, refund)
}

// BookingCompletedMessage tạo thông báo khi booking hoàn thành
func BookingCompletedMessage(bookingID uint) string {
	return fmt.Sprintf("🔔 Đơn đặt phòng #%d đã hoàn thành.", bookingID)
}
