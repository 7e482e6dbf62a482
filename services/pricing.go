package services

import (
	"math"
	"time"

	"homestay/config"
	"homestay/errors"
)

const bookingDateLayout = "02/01/2006"

// ParseBookingDate chuyển chuỗi ngày dd/mm/yyyy thành timestamp
func ParseBookingDate(dateStr string) (time.Time, error) {
	parsedDate, err := time.Parse(bookingDateLayout, dateStr)
	if err != nil {
		return time.Time{}, err
	}
	return parsedDate, nil
}

// DateOnly cắt bỏ giờ phút giây, chỉ giữ phần ngày
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// ValidateBookingDates kiểm tra ràng buộc ngày của một booking mới.
// So sánh theo ngày, bỏ qua giờ: check-in từ hôm nay trở đi,
// check-out phải sau check-in.
func ValidateBookingDates(checkIn, checkOut, now time.Time) error {
	if DateOnly(checkIn).Before(DateOnly(now)) {
		return errors.NewAppError(errors.ErrCodeInvalidInput,
			"Ngày nhận phòng không được nhỏ hơn ngày hiện tại", nil)
	}
	if !DateOnly(checkOut).After(DateOnly(checkIn)) {
		return errors.NewAppError(errors.ErrCodeInvalidInput,
			"Ngày trả phòng phải sau ngày nhận phòng", nil)
	}
	return nil
}

// RangesOverlap kiểm tra hai khoảng nửa mở [aStart, aEnd) và [bStart, bEnd)
// có giao nhau không. Trả phòng và nhận phòng cùng ngày không tính là trùng.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// CountNights tính số đêm giữa check-in và check-out (làm tròn lên)
func CountNights(checkIn, checkOut time.Time) int {
	hours := checkOut.Sub(checkIn).Hours()
	return int(math.Ceil(hours / 24))
}

// BookingAmounts là kết quả tính tiền tại thời điểm tạo booking
type BookingAmounts struct {
	TotalDays      int
	PricePerDay    int
	TotalAmount    float64
	Taxes          float64
	DiscountAmount float64
	FinalAmount    float64
}

// ComputeBookingAmounts tính tiền cho booking: tổng = số đêm * giá 1 đêm
// tại thời điểm đặt, thuế cộng thêm theo cấu hình. Không tính lại khi
// giá phòng đổi về sau.
func ComputeBookingAmounts(checkIn, checkOut time.Time, pricePerDay int, cfg config.BookingConfig) BookingAmounts {
	nights := CountNights(checkIn, checkOut)
	total := float64(nights * pricePerDay)
	taxes := total * cfg.TaxPercent / 100

	return BookingAmounts{
		TotalDays:   nights,
		PricePerDay: pricePerDay,
		TotalAmount: total,
		Taxes:       taxes,
		FinalAmount: total + taxes,
	}
}

// CancellationAmounts là kết quả tính phí hủy và tiền hoàn
type CancellationAmounts struct {
	Charges float64
	Refund  float64
}

// ComputeCancellation tính phí hủy theo chính sách cấu hình:
// hủy trước check-in đủ số ngày thì hoàn 100%, không thì thu phí theo %.
func ComputeCancellation(finalAmount float64, checkIn, now time.Time, cfg config.BookingConfig) CancellationAmounts {
	daysToCheckIn := int(DateOnly(checkIn).Sub(DateOnly(now)).Hours() / 24)

	if daysToCheckIn >= cfg.FullRefundDays {
		return CancellationAmounts{Charges: 0, Refund: finalAmount}
	}

	charges := finalAmount * cfg.CancelChargePercent / 100
	return CancellationAmounts{
		Charges: charges,
		Refund:  finalAmount - charges,
	}
}
