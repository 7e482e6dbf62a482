package services

import (
	"context"
	"testing"

	"homestay/constants"
	"homestay/errors"
	"homestay/policy"

	"github.com/stretchr/testify/assert"
)

// Hủy không đi qua UpdateStatus: bị chặn như một chuyển trạng thái
// không hợp lệ trước khi chạm storage, caller phải dùng Cancel
func TestUpdateStatus_CancelTargetRejected(t *testing.T) {
	svc := NewBookingService(BookingServiceOptions{})
	actor := policy.Actor{ID: 2, Role: constants.RoleHouseOwner}

	_, err := svc.UpdateStatus(context.Background(), 1, constants.BookingStatusCancelled, actor)
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidTransition))
}
