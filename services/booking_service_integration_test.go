//go:build integration

package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"homestay/constants"
	"homestay/dto"
	"homestay/errors"
	"homestay/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBookingService() *BookingService {
	return NewBookingService(BookingServiceOptions{DB: testDB})
}

func customerActor(id uint) policy.Actor {
	return policy.Actor{ID: id, Role: constants.RoleCustomer}
}

func ownerActor(id uint) policy.Actor {
	return policy.Actor{ID: id, Role: constants.RoleHouseOwner}
}

// Hai request trùng khoảng ngày trên cùng phòng: đúng một request thành công,
// request còn lại bị từ chối nhờ khóa dòng room trong transaction
func TestCreateBooking_ConcurrentOverlap(t *testing.T) {
	cleanTables()
	owner := createTestUser(t, constants.RoleHouseOwner)
	room := createTestRoom(t, owner.ID, 500)
	svc := newTestBookingService()

	checkIn := time.Now().AddDate(0, 1, 0)
	req := dto.CreateBookingRequest{
		RoomID:         room.RoomId,
		CheckInDate:    fmtBookingDate(checkIn),
		CheckOutDate:   fmtBookingDate(checkIn.AddDate(0, 0, 3)),
		NumberOfGuests: 2,
	}

	guestA := createTestUser(t, constants.RoleCustomer)
	guestB := createTestUser(t, constants.RoleCustomer)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i, guest := range []uint{guestA.ID, guestB.ID} {
		wg.Add(1)
		go func(idx int, guestID uint) {
			defer wg.Done()
			_, errs[idx] = svc.Create(context.Background(), req, customerActor(guestID))
		}(i, guest)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
			continue
		}
		rejected := errors.HasCode(err, errors.ErrCodeUnavailable) ||
			errors.HasCode(err, errors.ErrCodeConflict)
		assert.True(t, rejected, "lỗi không mong đợi: %v", err)
	}
	assert.Equal(t, 1, successes, "đúng một booking được tạo")

	var count int64
	require.NoError(t, testDB.Table("bookings").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestCreateBooking_OverlapRejected(t *testing.T) {
	cleanTables()
	owner := createTestUser(t, constants.RoleHouseOwner)
	guest := createTestUser(t, constants.RoleCustomer)
	room := createTestRoom(t, owner.ID, 500)
	svc := newTestBookingService()

	base := time.Now().AddDate(0, 1, 0)

	first, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		RoomID:         room.RoomId,
		CheckInDate:    fmtBookingDate(base),
		CheckOutDate:   fmtBookingDate(base.AddDate(0, 0, 4)),
		NumberOfGuests: 2,
	}, customerActor(guest.ID))
	require.NoError(t, err)
	assert.Equal(t, 4, first.TotalDays)
	assert.Equal(t, float64(2000), first.TotalAmount)
	assert.NotEmpty(t, first.ConfirmationCode)

	t.Run("trùng một ngày bị từ chối", func(t *testing.T) {
		_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID:         room.RoomId,
			CheckInDate:    fmtBookingDate(base.AddDate(0, 0, 3)),
			CheckOutDate:   fmtBookingDate(base.AddDate(0, 0, 5)),
			NumberOfGuests: 1,
		}, customerActor(guest.ID))
		assert.True(t, errors.HasCode(err, errors.ErrCodeUnavailable))
	})

	t.Run("check-in đúng ngày trả phòng được nhận", func(t *testing.T) {
		booking, err := svc.Create(context.Background(), dto.CreateBookingRequest{
			RoomID:         room.RoomId,
			CheckInDate:    fmtBookingDate(base.AddDate(0, 0, 4)),
			CheckOutDate:   fmtBookingDate(base.AddDate(0, 0, 6)),
			NumberOfGuests: 1,
		}, customerActor(guest.ID))
		require.NoError(t, err)
		assert.Equal(t, constants.BookingStatusPending, booking.Status)
	})
}

func TestCreateBooking_BlockedRangeRejected(t *testing.T) {
	cleanTables()
	owner := createTestUser(t, constants.RoleHouseOwner)
	guest := createTestUser(t, constants.RoleCustomer)
	room := createTestRoom(t, owner.ID, 500)
	svc := newTestBookingService()

	base := time.Now().AddDate(0, 1, 0)
	require.NoError(t, testDB.Exec(
		"INSERT INTO blocked_dates (room_id, from_date, to_date, reason) VALUES (?, ?, ?, ?)",
		room.RoomId, base, base.AddDate(0, 0, 3), "bảo trì").Error)

	_, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		RoomID:         room.RoomId,
		CheckInDate:    fmtBookingDate(base.AddDate(0, 0, 2)),
		CheckOutDate:   fmtBookingDate(base.AddDate(0, 0, 5)),
		NumberOfGuests: 1,
	}, customerActor(guest.ID))
	assert.True(t, errors.HasCode(err, errors.ErrCodeUnavailable))
}

func TestCancelBooking_Twice(t *testing.T) {
	cleanTables()
	owner := createTestUser(t, constants.RoleHouseOwner)
	guest := createTestUser(t, constants.RoleCustomer)
	room := createTestRoom(t, owner.ID, 500)
	svc := newTestBookingService()

	base := time.Now().AddDate(0, 2, 0)
	booking, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		RoomID:         room.RoomId,
		CheckInDate:    fmtBookingDate(base),
		CheckOutDate:   fmtBookingDate(base.AddDate(0, 0, 2)),
		NumberOfGuests: 1,
	}, customerActor(guest.ID))
	require.NoError(t, err)

	cancelled, err := svc.Cancel(context.Background(), booking.ID, "đổi kế hoạch", customerActor(guest.ID))
	require.NoError(t, err)
	assert.Equal(t, constants.BookingStatusCancelled, cancelled.Status)
	// Hủy trước check-in hơn 7 ngày: hoàn 100%
	assert.Equal(t, float64(0), cancelled.CancellationCharges)
	assert.Equal(t, cancelled.FinalAmount, cancelled.RefundAmount)

	_, err = svc.Cancel(context.Background(), booking.ID, "hủy lần hai", customerActor(guest.ID))
	assert.True(t, errors.HasCode(err, errors.ErrCodeAlreadyCancelled))
}

func TestUpdateStatus_TerminalBooking(t *testing.T) {
	cleanTables()
	owner := createTestUser(t, constants.RoleHouseOwner)
	guest := createTestUser(t, constants.RoleCustomer)
	room := createTestRoom(t, owner.ID, 500)
	svc := newTestBookingService()

	base := time.Now().AddDate(0, 1, 0)
	booking, err := svc.Create(context.Background(), dto.CreateBookingRequest{
		RoomID:         room.RoomId,
		CheckInDate:    fmtBookingDate(base),
		CheckOutDate:   fmtBookingDate(base.AddDate(0, 0, 2)),
		NumberOfGuests: 1,
	}, customerActor(guest.ID))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), booking.ID, constants.BookingStatusConfirmed, ownerActor(owner.ID))
	require.NoError(t, err)
	_, err = svc.UpdateStatus(context.Background(), booking.ID, constants.BookingStatusCompleted, ownerActor(owner.ID))
	require.NoError(t, err)

	_, err = svc.UpdateStatus(context.Background(), booking.ID, constants.BookingStatusConfirmed, ownerActor(owner.ID))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidTransition))
}
