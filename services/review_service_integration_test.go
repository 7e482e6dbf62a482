//go:build integration

package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"homestay/constants"
	"homestay/dto"
	"homestay/errors"
	"homestay/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createCompletedBooking(t *testing.T, guestID uint, room *models.Room) *models.Booking {
	t.Helper()
	now := time.Now()
	booking := &models.Booking{
		RoomID:           room.RoomId,
		PropertyID:       room.PropertyID,
		GuestID:          guestID,
		OwnerID:          room.OwnerID,
		CheckInDate:      now.AddDate(0, 0, -5),
		CheckOutDate:     now.AddDate(0, 0, -3),
		NumberOfGuests:   1,
		Status:           constants.BookingStatusCompleted,
		ConfirmationCode: fmt.Sprintf("HSTEST%08d", nextID()),
	}
	require.NoError(t, testDB.Create(booking).Error)
	return booking
}

func TestCreateReview_RequiresCompletedBooking(t *testing.T) {
	cleanTables()
	owner := createTestUser(t, constants.RoleHouseOwner)
	guest := createTestUser(t, constants.RoleCustomer)
	room := createTestRoom(t, owner.ID, 500)
	svc := NewReviewService(testDB)

	base := time.Now().AddDate(0, 1, 0)
	booking, err := newTestBookingService().Create(context.Background(), dto.CreateBookingRequest{
		RoomID:         room.RoomId,
		CheckInDate:    fmtBookingDate(base),
		CheckOutDate:   fmtBookingDate(base.AddDate(0, 0, 2)),
		NumberOfGuests: 1,
	}, customerActor(guest.ID))
	require.NoError(t, err)

	// Booking còn Pending: chưa đủ điều kiện đánh giá
	_, err = svc.Create(context.Background(), dto.CreateReviewRequest{
		BookingID: booking.ID,
		Star:      5,
	}, customerActor(guest.ID))
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotEligible))
}

func TestCreateReview_OncePerBooking(t *testing.T) {
	cleanTables()
	owner := createTestUser(t, constants.RoleHouseOwner)
	guest := createTestUser(t, constants.RoleCustomer)
	room := createTestRoom(t, owner.ID, 500)
	svc := NewReviewService(testDB)

	booking := createCompletedBooking(t, guest.ID, room)

	review, err := svc.Create(context.Background(), dto.CreateReviewRequest{
		BookingID: booking.ID,
		Comment:   "Phòng sạch, chủ nhà thân thiện",
		Star:      4,
	}, customerActor(guest.ID))
	require.NoError(t, err)
	assert.Equal(t, room.PropertyID, review.PropertyID)

	// Điểm trung bình của chỗ ở được tính lại ngay trong transaction
	var property models.Property
	require.NoError(t, testDB.First(&property, room.PropertyID).Error)
	assert.Equal(t, float64(4), property.AverageRating)
	assert.Equal(t, 1, property.TotalReviews)

	_, err = svc.Create(context.Background(), dto.CreateReviewRequest{
		BookingID: booking.ID,
		Star:      5,
	}, customerActor(guest.ID))
	assert.True(t, errors.HasCode(err, errors.ErrCodeNotEligible))
}

func TestCreateReview_OnlyBookingGuest(t *testing.T) {
	cleanTables()
	owner := createTestUser(t, constants.RoleHouseOwner)
	guest := createTestUser(t, constants.RoleCustomer)
	other := createTestUser(t, constants.RoleCustomer)
	room := createTestRoom(t, owner.ID, 500)
	svc := NewReviewService(testDB)

	booking := createCompletedBooking(t, guest.ID, room)

	_, err := svc.Create(context.Background(), dto.CreateReviewRequest{
		BookingID: booking.ID,
		Star:      5,
	}, customerActor(other.ID))
	assert.True(t, errors.HasCode(err, errors.ErrCodeForbidden))
}

func TestDeleteReview_RecomputesRating(t *testing.T) {
	cleanTables()
	owner := createTestUser(t, constants.RoleHouseOwner)
	guestA := createTestUser(t, constants.RoleCustomer)
	guestB := createTestUser(t, constants.RoleCustomer)
	room := createTestRoom(t, owner.ID, 500)
	svc := NewReviewService(testDB)

	bookingA := createCompletedBooking(t, guestA.ID, room)
	bookingB := createCompletedBooking(t, guestB.ID, room)

	_, err := svc.Create(context.Background(), dto.CreateReviewRequest{BookingID: bookingA.ID, Star: 5}, customerActor(guestA.ID))
	require.NoError(t, err)
	reviewB, err := svc.Create(context.Background(), dto.CreateReviewRequest{BookingID: bookingB.ID, Star: 3}, customerActor(guestB.ID))
	require.NoError(t, err)

	var property models.Property
	require.NoError(t, testDB.First(&property, room.PropertyID).Error)
	assert.Equal(t, float64(4), property.AverageRating)
	assert.Equal(t, 2, property.TotalReviews)

	require.NoError(t, svc.Delete(context.Background(), reviewB.ID, customerActor(guestB.ID)))

	require.NoError(t, testDB.First(&property, room.PropertyID).Error)
	assert.Equal(t, float64(5), property.AverageRating)
	assert.Equal(t, 1, property.TotalReviews)
}
