package booking

import (
	"context"
	"errors"
	"testing"

	bookingRepo "carexyz/database/repository/booking"
	"carexyz/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func storedBooking(owner *models.Principal, status models.BookingStatus) *models.Booking {
	return &models.Booking{ID: primitive.NewObjectID(), UserID: owner.UserID, Status: status}
}

func TestUpdateStatusOwnerCancels(t *testing.T) {
	f := newFixture()
	b := storedBooking(alice, models.BookingStatusPending)
	f.bookings.On("FindByID", mock.Anything, b.ID.Hex()).Return(b, nil)
	f.bookings.On("UpdateStatus", mock.Anything, b.ID, models.BookingStatusCancelled, fixedNow).Return(nil).Once()

	require.NoError(t, f.svc.UpdateStatus(context.Background(), alice, b.ID.Hex(), "Cancelled"))
	f.bookings.AssertExpectations(t)
}

func TestUpdateStatusIsIdempotent(t *testing.T) {
	f := newFixture()
	b := storedBooking(alice, models.BookingStatusCancelled)
	f.bookings.On("FindByID", mock.Anything, b.ID.Hex()).Return(b, nil)
	f.bookings.On("UpdateStatus", mock.Anything, b.ID, models.BookingStatusCancelled, fixedNow).Return(nil)

	require.NoError(t, f.svc.UpdateStatus(context.Background(), alice, b.ID.Hex(), "Cancelled"))
	require.NoError(t, f.svc.UpdateStatus(context.Background(), alice, b.ID.Hex(), "Cancelled"))
}

func TestUpdateStatusHidesOtherUsersBookings(t *testing.T) {
	f := newFixture()
	b := storedBooking(alice, models.BookingStatusPending)
	f.bookings.On("FindByID", mock.Anything, b.ID.Hex()).Return(b, nil)

	err := f.svc.UpdateStatus(context.Background(), bob, b.ID.Hex(), "Cancelled")
	assert.ErrorIs(t, err, models.ErrNotFound)
	f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusMissingBooking(t *testing.T) {
	f := newFixture()
	f.bookings.On("FindByID", mock.Anything, "nope").Return(nil, nil)

	err := f.svc.UpdateStatus(context.Background(), alice, "nope", "Cancelled")
	assert.ErrorIs(t, err, models.ErrNotFound)
}

func TestUpdateStatusRequiresStatus(t *testing.T) {
	f := newFixture()
	err := f.svc.UpdateStatus(context.Background(), alice, primitive.NewObjectID().Hex(), "  ")
	assert.ErrorIs(t, err, models.ErrValidation)
	f.bookings.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)

	err = f.svc.UpdateStatus(context.Background(), nil, primitive.NewObjectID().Hex(), "Cancelled")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
}

func TestUpdateStatusStoreFailures(t *testing.T) {
	f := newFixture()
	b := storedBooking(alice, models.BookingStatusPending)
	f.bookings.On("FindByID", mock.Anything, "broken").Return(nil, errors.New("timeout"))
	f.bookings.On("FindByID", mock.Anything, b.ID.Hex()).Return(b, nil)
	f.bookings.On("UpdateStatus", mock.Anything, b.ID, mock.Anything, mock.Anything).Return(errors.New("write conflict")).Once()

	assert.ErrorIs(t, f.svc.UpdateStatus(context.Background(), alice, "broken", "Cancelled"), models.ErrStore)
	assert.ErrorIs(t, f.svc.UpdateStatus(context.Background(), alice, b.ID.Hex(), "Cancelled"), models.ErrStore)
}

func TestUpdateStatusRaceWithDelete(t *testing.T) {
	f := newFixture()
	b := storedBooking(alice, models.BookingStatusPending)
	f.bookings.On("FindByID", mock.Anything, b.ID.Hex()).Return(b, nil)
	f.bookings.On("UpdateStatus", mock.Anything, b.ID, mock.Anything, mock.Anything).Return(bookingRepo.ErrBookingNotFound)

	assert.ErrorIs(t, f.svc.UpdateStatus(context.Background(), alice, b.ID.Hex(), "Cancelled"), models.ErrNotFound)
}

// With the transition table enforced, owners may only cancel and terminal
// bookings cannot be reopened.
func TestUpdateStatusEnforcesTransitions(t *testing.T) {
	cases := []struct {
		name    string
		current models.BookingStatus
		next    string
	}{
		{"owner cannot confirm", models.BookingStatusPending, "Confirmed"},
		{"owner cannot complete", models.BookingStatusConfirmed, "Completed"},
		{"cancelled stays cancelled", models.BookingStatusCancelled, "Pending"},
		{"completed cannot be cancelled", models.BookingStatusCompleted, "Cancelled"},
		{"unknown status", models.BookingStatusPending, "Archived"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture()
			b := storedBooking(alice, tc.current)
			f.bookings.On("FindByID", mock.Anything, b.ID.Hex()).Return(b, nil)

			err := f.svc.UpdateStatus(context.Background(), alice, b.ID.Hex(), tc.next)
			assert.ErrorIs(t, err, models.ErrValidation)
			f.bookings.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

// Legacy mode accepts any non-empty status from the owner.
func TestUpdateStatusWithoutTransitionEnforcement(t *testing.T) {
	f := newFixture()
	f.svc.EnforceTransitions = false
	b := storedBooking(alice, models.BookingStatusCancelled)
	f.bookings.On("FindByID", mock.Anything, b.ID.Hex()).Return(b, nil)
	f.bookings.On("UpdateStatus", mock.Anything, b.ID, models.BookingStatus("Completed"), fixedNow).Return(nil).Once()

	require.NoError(t, f.svc.UpdateStatus(context.Background(), alice, b.ID.Hex(), "Completed"))
	f.bookings.AssertExpectations(t)
}

func TestAdminUpdateStatus(t *testing.T) {
	f := newFixture()
	b := storedBooking(alice, models.BookingStatusPending)
	f.bookings.On("FindByID", mock.Anything, b.ID.Hex()).Return(b, nil)
	f.bookings.On("UpdateStatus", mock.Anything, b.ID, models.BookingStatusConfirmed, fixedNow).Return(nil).Once()
	f.bookings.On("UpdateStatus", mock.Anything, b.ID, models.BookingStatusCompleted, fixedNow).Return(nil).Once()

	require.NoError(t, f.svc.AdminUpdateStatus(context.Background(), admin, b.ID.Hex(), "Confirmed"))
	assert.Equal(t, models.BookingStatusConfirmed, b.Status)
	require.NoError(t, f.svc.AdminUpdateStatus(context.Background(), admin, b.ID.Hex(), "Completed"))

	err := f.svc.AdminUpdateStatus(context.Background(), admin, b.ID.Hex(), "Pending")
	assert.ErrorIs(t, err, models.ErrValidation)
	assert.Equal(t, "Booking is already Completed", models.Message(err, ""))
	f.bookings.AssertExpectations(t)
}

func TestAdminUpdateStatusRejectsNonAdmins(t *testing.T) {
	f := newFixture()
	err := f.svc.AdminUpdateStatus(context.Background(), alice, primitive.NewObjectID().Hex(), "Confirmed")
	assert.ErrorIs(t, err, models.ErrUnauthorized)
	f.bookings.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}
