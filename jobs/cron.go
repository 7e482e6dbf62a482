package jobs

import (
	"fmt"
	"log"
	"time"

	"homestay/config"
	"homestay/constants"
	"homestay/models"
	"homestay/services"
	"homestay/utils"

	"github.com/olahol/melody"
	"github.com/robfig/cron/v3"
)

// InitCronJobs khởi tạo các cron jobs
func InitCronJobs(c *cron.Cron, m *melody.Melody) error {
	// Cron job chạy lúc 0h mỗi ngày: quét booking quá hạn
	_, err := c.AddFunc("0 0 * * *", func() {
		log.Printf("Đang chạy quét booking quá hạn lúc: %v", time.Now())
		if err := SweepExpiredBookings(m); err != nil {
			log.Printf("Lỗi khi quét booking quá hạn: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add booking sweep cron job: %v", err)
	}

	c.Start()
	log.Println("Cron jobs initialized successfully")
	return nil
}

// SweepExpiredBookings xử lý booking quá hạn:
// booking đã xác nhận qua ngày trả phòng thành hoàn thành,
// booking chờ xác nhận qua ngày nhận phòng thành hủy.
func SweepExpiredBookings(m *melody.Melody) error {
	today := services.DateOnly(time.Now())

	var confirmed []models.Booking
	if err := config.DB.
		Where("status = ? AND check_out_date <= ?", constants.BookingStatusConfirmed, today).
		Find(&confirmed).Error; err != nil {
		return err
	}

	for _, booking := range confirmed {
		if err := booking.Transition(constants.BookingStatusCompleted); err != nil {
			log.Printf("Bỏ qua booking %d: %v", booking.ID, err)
			continue
		}
		if err := config.DB.Model(&booking).Update("status", constants.BookingStatusCompleted).Error; err != nil {
			utils.LogError("Lỗi khi hoàn thành booking %d: %v", booking.ID, err)
			continue
		}
		utils.LogInfo("Booking %d đã qua ngày trả phòng, chuyển sang hoàn thành", booking.ID)
	}

	var pending []models.Booking
	if err := config.DB.
		Where("status = ? AND check_in_date <= ?", constants.BookingStatusPending, today).
		Find(&pending).Error; err != nil {
		return err
	}

	now := time.Now()
	for _, booking := range pending {
		if err := booking.Transition(constants.BookingStatusCancelled); err != nil {
			log.Printf("Bỏ qua booking %d: %v", booking.ID, err)
			continue
		}
		updates := map[string]interface{}{
			"status":              constants.BookingStatusCancelled,
			"cancellation_reason": "Không được xác nhận trước ngày nhận phòng",
			"cancellation_date":   &now,
		}
		if err := config.DB.Model(&booking).Updates(updates).Error; err != nil {
			utils.LogError("Lỗi khi hủy booking %d: %v", booking.ID, err)
			continue
		}
		utils.LogInfo("Booking %d chưa xác nhận đến ngày nhận phòng, đã hủy", booking.ID)
	}

	if m != nil && (len(confirmed) > 0 || len(pending) > 0) {
		message := fmt.Sprintf(`{"type":"booking_sweep","completed":%d,"cancelled":%d}`, len(confirmed), len(pending))
		if err := m.Broadcast([]byte(message)); err != nil {
			log.Printf("Lỗi khi gửi thông báo quét booking: %v", err)
		}
	}

	return nil
}
