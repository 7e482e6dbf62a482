package config

import (
	"log"
	"os"
	"strconv"
)

// BookingConfig gom các tham số chính sách đặt phòng, đọc từ biến môi trường.
// Chính sách hủy là cấu hình, không phải hằng số nghiệp vụ.
type BookingConfig struct {
	// Hủy trước check-in từ FullRefundDays ngày trở lên thì hoàn tiền 100%
	FullRefundDays int
	// Dưới mốc trên thì thu phí CancelChargePercent % trên tổng tiền
	CancelChargePercent float64
	// Thuế cộng thêm trên tổng tiền phòng (%)
	TaxPercent float64
}

var Booking = BookingConfig{
	FullRefundDays:      7,
	CancelChargePercent: 50,
	TaxPercent:          0,
}

// LoadBookingConfig nạp chính sách đặt phòng từ biến môi trường
func LoadBookingConfig() {
	if v := os.Getenv("CANCEL_FULL_REFUND_DAYS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			Booking.FullRefundDays = parsed
		} else {
			log.Printf("CANCEL_FULL_REFUND_DAYS không hợp lệ: %s", v)
		}
	}
	if v := os.Getenv("CANCEL_CHARGE_PERCENT"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 100 {
			Booking.CancelChargePercent = parsed
		} else {
			log.Printf("CANCEL_CHARGE_PERCENT không hợp lệ: %s", v)
		}
	}
	if v := os.Getenv("BOOKING_TAX_PERCENT"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			Booking.TaxPercent = parsed
		} else {
			log.Printf("BOOKING_TAX_PERCENT không hợp lệ: %s", v)
		}
	}
}
