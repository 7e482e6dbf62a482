package services

import (
	"context"
	stderrors "errors"

	"homestay/constants"
	"homestay/dto"
	"homestay/errors"
	"homestay/models"
	"homestay/policy"

	"gorm.io/gorm"
)

// ReviewService xử lý đánh giá: mỗi booking hoàn thành được đánh giá
// đúng một lần, điểm trung bình của chỗ ở được tính lại ngay khi
// đánh giá thay đổi.
type ReviewService struct {
	db *gorm.DB
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

// RecomputeRating tính điểm trung bình và số lượng từ danh sách đánh giá.
// Hàm thuần, không phụ thuộc storage.
func RecomputeRating(reviews []models.Review) (float64, int) {
	if len(reviews) == 0 {
		return 0, 0
	}

	var totalStars int
	for _, review := range reviews {
		totalStars += review.Star
	}
	return float64(totalStars) / float64(len(reviews)), len(reviews)
}

func validateStar(star int) error {
	if star < 1 || star > 5 {
		return errors.NewAppError(errors.ErrCodeInvalidInput, "Số sao phải từ 1 đến 5", nil)
	}
	return nil
}

// Create tạo đánh giá cho một booking đã hoàn thành.
// Không đủ điều kiện (booking chưa hoàn thành, hoặc đã đánh giá rồi)
// trả NOT_ELIGIBLE.
func (s *ReviewService) Create(ctx context.Context, req dto.CreateReviewRequest, actor policy.Actor) (*models.Review, error) {
	if err := policy.Authorize(actor, policy.ActionReviewCreate, policy.Resource{}); err != nil {
		return nil, err
	}
	if err := validateStar(req.Star); err != nil {
		return nil, err
	}

	var review models.Review

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, req.BookingID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đơn đặt phòng", nil)
			}
			return wrapDBError(err)
		}

		if booking.GuestID != actor.ID {
			return errors.NewAppError(errors.ErrCodeForbidden, "Không có quyền truy cập", nil)
		}
		if booking.Status != constants.BookingStatusCompleted {
			return errors.NewAppError(errors.ErrCodeNotEligible,
				"Chỉ đánh giá được đơn đã hoàn thành", nil)
		}

		var existing int64
		if err := tx.Model(&models.Review{}).
			Where("booking_id = ?", booking.ID).
			Count(&existing).Error; err != nil {
			return wrapDBError(err)
		}
		if existing > 0 {
			return errors.NewAppError(errors.ErrCodeNotEligible,
				"Bạn đã đánh giá đơn này trước đó", nil)
		}

		review = models.Review{
			BookingID:   booking.ID,
			GuestID:     booking.GuestID,
			OwnerID:     booking.OwnerID,
			RoomID:      booking.RoomID,
			PropertyID:  booking.PropertyID,
			Comment:     req.Comment,
			Star:        req.Star,
			Cleanliness: req.Cleanliness,
			Location:    req.Location,
			Value:       req.Value,
		}

		if err := tx.Create(&review).Error; err != nil {
			// Unique index trên booking_id chặn race hai đánh giá cùng lúc
			return errors.NewAppError(errors.ErrCodeNotEligible,
				"Bạn đã đánh giá đơn này trước đó", err)
		}

		return s.recomputePropertyRating(tx, booking.PropertyID)
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return nil, txErr
		}
		return nil, wrapDBError(txErr)
	}

	return &review, nil
}

// Update sửa đánh giá, chỉ khách đã viết được sửa
func (s *ReviewService) Update(ctx context.Context, req dto.UpdateReviewRequest, actor policy.Actor) (*models.Review, error) {
	if err := validateStar(req.Star); err != nil {
		return nil, err
	}

	var review models.Review

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&review, req.ID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đánh giá", nil)
			}
			return wrapDBError(err)
		}

		if err := policy.Authorize(actor, policy.ActionReviewUpdate,
			policy.Resource{GuestID: review.GuestID}); err != nil {
			return err
		}

		review.Comment = req.Comment
		review.Star = req.Star
		review.Cleanliness = req.Cleanliness
		review.Location = req.Location
		review.Value = req.Value

		if err := tx.Save(&review).Error; err != nil {
			return wrapDBError(err)
		}

		return s.recomputePropertyRating(tx, review.PropertyID)
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return nil, txErr
		}
		return nil, wrapDBError(txErr)
	}

	return &review, nil
}

// Delete xóa đánh giá, khách đã viết hoặc admin được xóa
func (s *ReviewService) Delete(ctx context.Context, reviewID uint, actor policy.Actor) error {
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var review models.Review
		if err := tx.First(&review, reviewID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đánh giá", nil)
			}
			return wrapDBError(err)
		}

		if err := policy.Authorize(actor, policy.ActionReviewDelete,
			policy.Resource{GuestID: review.GuestID}); err != nil {
			return err
		}

		if err := tx.Delete(&models.Review{}, reviewID).Error; err != nil {
			return wrapDBError(err)
		}

		return s.recomputePropertyRating(tx, review.PropertyID)
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return txErr
		}
		return wrapDBError(txErr)
	}
	return nil
}

// recomputePropertyRating tính lại điểm trung bình của chỗ ở trong cùng
// transaction với thay đổi đánh giá
func (s *ReviewService) recomputePropertyRating(tx *gorm.DB, propertyID uint) error {
	var reviews []models.Review
	if err := tx.Where("property_id = ?", propertyID).Find(&reviews).Error; err != nil {
		return wrapDBError(err)
	}

	average, count := RecomputeRating(reviews)

	if err := tx.Model(&models.Property{}).
		Where("id = ?", propertyID).
		Updates(map[string]interface{}{
			"average_rating": average,
			"total_reviews":  count,
		}).Error; err != nil {
		return wrapDBError(err)
	}
	return nil
}
