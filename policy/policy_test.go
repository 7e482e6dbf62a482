package policy

import (
	"testing"

	"homestay/constants"
	"homestay/errors"

	"github.com/stretchr/testify/assert"
)

func TestAuthorize_Unauthenticated(t *testing.T) {
	err := Authorize(Actor{}, ActionBookingCreate, Resource{})
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnauthenticated))
}

func TestAuthorize_Admin(t *testing.T) {
	admin := Actor{ID: 1, Role: constants.RoleAdmin}

	t.Run("admin được mọi hành động", func(t *testing.T) {
		assert.NoError(t, Authorize(admin, ActionPropertyWrite, Resource{OwnerID: 99}))
		assert.NoError(t, Authorize(admin, ActionBookingStatus, Resource{OwnerID: 99}))
		assert.NoError(t, Authorize(admin, ActionReviewDelete, Resource{GuestID: 99}))
		assert.NoError(t, Authorize(admin, ActionUserDeactivate, Resource{UserID: 2}))
	})

	t.Run("admin không tự khóa chính mình", func(t *testing.T) {
		err := Authorize(admin, ActionUserDeactivate, Resource{UserID: admin.ID})
		assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))
	})

	t.Run("admin không tự xóa chính mình", func(t *testing.T) {
		err := Authorize(admin, ActionUserDelete, Resource{UserID: admin.ID})
		assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))
	})
}

func TestAuthorize_Owner(t *testing.T) {
	owner := Actor{ID: 10, Role: constants.RoleHouseOwner}

	tests := []struct {
		name    string
		action  Action
		res     Resource
		allowed bool
	}{
		{"sửa property của mình", ActionPropertyWrite, Resource{OwnerID: 10}, true},
		{"sửa property người khác", ActionPropertyWrite, Resource{OwnerID: 11}, false},
		{"sửa phòng của mình", ActionRoomWrite, Resource{OwnerID: 10}, true},
		{"sửa phòng người khác", ActionRoomWrite, Resource{OwnerID: 11}, false},
		{"đổi trạng thái booking của phòng mình", ActionBookingStatus, Resource{OwnerID: 10}, true},
		{"đổi trạng thái booking phòng người khác", ActionBookingStatus, Resource{OwnerID: 11}, false},
		{"hủy booking của phòng mình", ActionBookingCancel, Resource{OwnerID: 10, GuestID: 5}, true},
		{"chủ nhà không tạo booking", ActionBookingCreate, Resource{}, false},
		{"chủ nhà không tạo đánh giá", ActionReviewCreate, Resource{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(owner, tt.action, tt.res)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))
			}
		})
	}
}

func TestAuthorize_Customer(t *testing.T) {
	customer := Actor{ID: 5, Role: constants.RoleCustomer}

	tests := []struct {
		name    string
		action  Action
		res     Resource
		allowed bool
	}{
		{"khách tạo booking", ActionBookingCreate, Resource{}, true},
		{"khách hủy booking của mình", ActionBookingCancel, Resource{GuestID: 5, OwnerID: 10}, true},
		{"khách không hủy booking người khác", ActionBookingCancel, Resource{GuestID: 6, OwnerID: 10}, false},
		{"khách không đổi trạng thái booking", ActionBookingStatus, Resource{OwnerID: 10}, false},
		{"khách tạo đánh giá", ActionReviewCreate, Resource{}, true},
		{"khách sửa đánh giá của mình", ActionReviewUpdate, Resource{GuestID: 5}, true},
		{"khách không sửa đánh giá người khác", ActionReviewUpdate, Resource{GuestID: 6}, false},
		{"khách xóa đánh giá của mình", ActionReviewDelete, Resource{GuestID: 5}, true},
		{"khách không sửa property", ActionPropertyWrite, Resource{OwnerID: 5}, false},
		{"khách không xác minh property", ActionPropertyVerify, Resource{}, false},
		{"khách không khóa user", ActionUserDeactivate, Resource{UserID: 6}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(customer, tt.action, tt.res)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))
			}
		})
	}
}

func TestAuthorize_UnknownActionDenied(t *testing.T) {
	customer := Actor{ID: 5, Role: constants.RoleCustomer}
	err := Authorize(customer, Action("something:else"), Resource{})
	assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))
}
