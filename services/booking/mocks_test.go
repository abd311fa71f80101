package booking

import (
	"context"
	"time"

	"carexyz/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) Insert(ctx context.Context, b *models.Booking) error {
	args := m.Called(ctx, b)
	if args.Error(0) == nil && b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	return args.Error(0)
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*models.Booking)
	return b, args.Error(1)
}

func (m *mockBookingRepo) FindByUser(ctx context.Context, userID string) ([]models.Booking, error) {
	args := m.Called(ctx, userID)
	bs, _ := args.Get(0).([]models.Booking)
	return bs, args.Error(1)
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.BookingStatus, at time.Time) error {
	return m.Called(ctx, id, status, at).Error(0)
}

func (m *mockBookingRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockBookingRepo) FindRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	args := m.Called(ctx, limit)
	bs, _ := args.Get(0).([]models.Booking)
	return bs, args.Error(1)
}

func (m *mockBookingRepo) FindPayments(ctx context.Context, status models.BookingStatus, limit int) ([]models.Booking, error) {
	args := m.Called(ctx, status, limit)
	bs, _ := args.Get(0).([]models.Booking)
	return bs, args.Error(1)
}

func (m *mockBookingRepo) Revenue(ctx context.Context, statuses []models.BookingStatus) (float64, error) {
	args := m.Called(ctx, statuses)
	return args.Get(0).(float64), args.Error(1)
}

func (m *mockBookingRepo) PaymentSummary(ctx context.Context) (models.PaymentSummary, error) {
	args := m.Called(ctx)
	return args.Get(0).(models.PaymentSummary), args.Error(1)
}

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *models.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) GetByIDs(ctx context.Context, ids []string) ([]models.User, error) {
	args := m.Called(ctx, ids)
	us, _ := args.Get(0).([]models.User)
	return us, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) ExistsByEmailOrNID(ctx context.Context, email, nid string) (bool, error) {
	args := m.Called(ctx, email, nid)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) UpsertGoogle(ctx context.Context, p models.GoogleProfile) (*models.User, error) {
	args := m.Called(ctx, p)
	u, _ := args.Get(0).(*models.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) SetRole(ctx context.Context, email string, role models.Role) error {
	return m.Called(ctx, email, role).Error(0)
}

func (m *mockUserRepo) CountAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) BookingCreated(ctx context.Context, b models.Booking, recipient string) error {
	return m.Called(ctx, b, recipient).Error(0)
}

type mockVerifier struct {
	mock.Mock
}

func (m *mockVerifier) VerifyPaymentIntent(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}
