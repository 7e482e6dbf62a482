package services

import (
	"context"
	stderrors "errors"

	"homestay/constants"
	"homestay/errors"
	"homestay/models"
	"homestay/policy"
	"homestay/services/logger"

	"gorm.io/gorm"
)

// UserServiceOptions chứa các dependency của UserService
type UserServiceOptions struct {
	DB     *gorm.DB
	Logger logger.Logger
}

// UserService xử lý quản trị user: đổi trạng thái, xóa.
// Admin không được tự khóa hoặc tự xóa tài khoản của chính mình.
type UserService struct {
	db     *gorm.DB
	logger logger.Logger
}

func NewUserService(opts UserServiceOptions) *UserService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &UserService{
		db:     opts.DB,
		logger: l,
	}
}

// ChangeStatus đổi trạng thái hoạt động của user (khóa/mở khóa)
func (s *UserService) ChangeStatus(ctx context.Context, userID uint, status int, actor policy.Actor) (*models.User, error) {
	if status != constants.UserStatusActive && status != constants.UserStatusInactive {
		return nil, errors.NewAppError(errors.ErrCodeInvalidInput, "Trạng thái không hợp lệ", nil)
	}

	if err := policy.Authorize(actor, policy.ActionUserDeactivate,
		policy.Resource{UserID: userID}); err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		if stderrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy người dùng", nil)
		}
		return nil, wrapDBError(err)
	}

	if err := s.db.WithContext(ctx).Model(&user).Update("status", status).Error; err != nil {
		return nil, wrapDBError(err)
	}

	user.Status = status
	s.logger.Info("Đổi trạng thái user %d thành %d", userID, status)
	return &user, nil
}

// Delete xóa user. Property và room của user chỉ bị ngưng hoạt động
// (soft delete) để giữ tham chiếu cho các booking cũ.
func (s *UserService) Delete(ctx context.Context, userID uint, actor policy.Actor) error {
	if err := policy.Authorize(actor, policy.ActionUserDelete,
		policy.Resource{UserID: userID}); err != nil {
		return err
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if stderrors.Is(err, gorm.ErrRecordNotFound) {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy người dùng", nil)
			}
			return wrapDBError(err)
		}

		if user.Role == constants.RoleHouseOwner {
			if err := tx.Model(&models.Property{}).
				Where("owner_id = ?", userID).
				Update("is_active", false).Error; err != nil {
				return wrapDBError(err)
			}
			if err := tx.Model(&models.Room{}).
				Where("owner_id = ?", userID).
				Update("is_active", false).Error; err != nil {
				return wrapDBError(err)
			}
		}

		if err := tx.Delete(&models.User{}, userID).Error; err != nil {
			return wrapDBError(err)
		}
		return nil
	})
	if txErr != nil {
		if errors.IsAppError(txErr) {
			return txErr
		}
		return wrapDBError(txErr)
	}

	s.logger.Info("Xóa user %d", userID)
	return nil
}
