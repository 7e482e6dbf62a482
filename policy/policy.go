package policy

import (
	"homestay/constants"
	"homestay/errors"
)

// Actor là người gọi đã xác thực, truyền tường minh vào mọi thao tác
type Actor struct {
	ID   uint
	Role int
}

// Action định nghĩa hành động cần kiểm tra quyền
type Action string

const (
	ActionPropertyWrite  Action = "property:write"
	ActionPropertyVerify Action = "property:verify"
	ActionRoomWrite      Action = "room:write"
	ActionBookingCreate  Action = "booking:create"
	ActionBookingStatus  Action = "booking:status"
	ActionBookingCancel  Action = "booking:cancel"
	ActionReviewCreate   Action = "review:create"
	ActionReviewUpdate   Action = "review:update"
	ActionReviewDelete   Action = "review:delete"
	ActionUserDeactivate Action = "user:deactivate"
	ActionUserDelete     Action = "user:delete"
)

// Resource mô tả tài nguyên bị tác động.
// OwnerID: chủ sở hữu property/room/booking. GuestID: khách của booking/review.
// UserID: user bị tác động (dùng cho quy tắc admin không tự khóa chính mình).
type Resource struct {
	OwnerID uint
	GuestID uint
	UserID  uint
}

func (a Actor) IsAdmin() bool {
	return a.Role == constants.RoleAdmin
}

// Authorize là hàm quyết định quyền duy nhất, từ chối mặc định.
// Trả về nil nếu cho phép, AppError FORBIDDEN/UNAUTHENTICATED nếu không.
func Authorize(actor Actor, action Action, res Resource) error {
	if actor.ID == 0 {
		return errors.NewAppError(errors.ErrCodeUnauthenticated, "Chưa xác thực", nil)
	}

	// Admin được phép mọi hành động, trừ tự khóa/xóa tài khoản của chính mình
	if actor.IsAdmin() {
		if (action == ActionUserDeactivate || action == ActionUserDelete) && res.UserID == actor.ID {
			return forbidden()
		}
		return nil
	}

	switch action {
	case ActionPropertyWrite, ActionRoomWrite:
		if actor.Role == constants.RoleHouseOwner && actor.ID == res.OwnerID {
			return nil
		}
	case ActionBookingCreate:
		if actor.Role == constants.RoleCustomer {
			return nil
		}
	case ActionBookingStatus:
		if actor.ID == res.OwnerID {
			return nil
		}
	case ActionBookingCancel:
		if actor.ID == res.GuestID || actor.ID == res.OwnerID {
			return nil
		}
	case ActionReviewCreate:
		if actor.Role == constants.RoleCustomer {
			return nil
		}
	case ActionReviewUpdate:
		if actor.Role == constants.RoleCustomer && actor.ID == res.GuestID {
			return nil
		}
	case ActionReviewDelete:
		if actor.ID == res.GuestID {
			return nil
		}
	}

	return forbidden()
}

func forbidden() error {
	return errors.NewAppError(errors.ErrCodeForbidden, "Không có quyền truy cập", nil)
}
