package service_test

import (
	"context"
	"testing"
	"time"

	"homestay-settlement/internal/model"
	"homestay-settlement/internal/service"
	mockrepo "homestay-settlement/mocks/repository"
	mocksvc "homestay-settlement/mocks/service"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// passthroughTx runs the transactional closure with a nil tx so mocked
// repositories observe the calls directly.
func passthroughTx(ctx context.Context, fn func(pgx.Tx) error) error {
	return fn(nil)
}

type bookingFixture struct {
	bookingRepo *mockrepo.BookingRepository
	roomRepo    *mockrepo.RoomRepository
	couponRepo  *mockrepo.CouponRepository
	wallet      *mocksvc.WalletService
	pricing     *mocksvc.PricingService
	dbManager   *mockrepo.DBManager
	service     service.BookingService
}

func newBookingFixture(t *testing.T) *bookingFixture {
	f := &bookingFixture{
		bookingRepo: mockrepo.NewBookingRepository(t),
		roomRepo:    mockrepo.NewRoomRepository(t),
		couponRepo:  mockrepo.NewCouponRepository(t),
		wallet:      mocksvc.NewWalletService(t),
		pricing:     mocksvc.NewPricingService(t),
		dbManager:   mockrepo.NewDBManager(t),
	}
	f.service = service.NewBookingService(f.bookingRepo, f.roomRepo, f.couponRepo, f.wallet, f.pricing, f.dbManager, zerolog.Nop())
	return f
}

func futureDate(days int) string {
	return time.Now().UTC().Add(time.Duration(days) * 24 * time.Hour).Format("2006-01-02")
}

func TestCreateBooking_WithCoupon(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	f.roomRepo.On("GetRoom", ctx, int64(5)).Return(&model.Room{
		ID:            5,
		HostID:        2,
		Capacity:      4,
		PricePerNight: 1000000,
	}, nil)
	f.pricing.On("Quote", ctx, "SAVE10", int64(2000000), int64(1), int64(2)).Return(&model.Quote{
		DiscountAmount: 150000,
		FinalPrice:     1850000,
	}, nil)
	f.bookingRepo.On("HasConflict", ctx, int64(5), mock.Anything, mock.Anything, int64(0)).Return(false, nil)
	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("InsertBooking", ctx, mock.MatchedBy(func(b *model.Booking) bool {
		return b.RoomID == 5 &&
			b.GuestID == 1 &&
			b.HostID == 2 &&
			b.Status == model.BookingPending &&
			b.PaymentStatus == model.PaymentPending &&
			b.OriginalPrice == 2000000 &&
			b.DiscountAmount == 150000 &&
			b.TotalPrice == 1850000
	}), mock.Anything).Return(nil)

	booking, err := f.service.CreateBooking(ctx, &model.CreateBookingRequest{
		RoomID:     5,
		CheckIn:    futureDate(10),
		CheckOut:   futureDate(12),
		Guests:     2,
		CouponCode: "SAVE10",
	}, 1)

	require.NoError(t, err)
	require.NotNil(t, booking.CouponCode)
	assert.Equal(t, "SAVE10", *booking.CouponCode)
	assert.Equal(t, 2, booking.Nights())
}

func TestCreateBooking_CapacityExceeded(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	f.roomRepo.On("GetRoom", ctx, int64(5)).Return(&model.Room{
		ID:            5,
		HostID:        2,
		Capacity:      2,
		PricePerNight: 1000000,
	}, nil)

	_, err := f.service.CreateBooking(ctx, &model.CreateBookingRequest{
		RoomID:   5,
		CheckIn:  futureDate(10),
		CheckOut: futureDate(12),
		Guests:   5,
	}, 1)

	assert.ErrorIs(t, err, model.ErrCapacityExceeded)
}

func TestCreateBooking_InvalidDates(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"check-out before check-in", futureDate(12), futureDate(10)},
		{"same day", futureDate(10), futureDate(10)},
		{"check-in in the past", "2020-01-01", futureDate(10)},
		{"malformed check-in", "not-a-date", futureDate(10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.service.CreateBooking(ctx, &model.CreateBookingRequest{
				RoomID:   5,
				CheckIn:  tt.checkIn,
				CheckOut: tt.checkOut,
				Guests:   2,
			}, 1)
			assert.ErrorIs(t, err, model.ErrInvalidDateRange)
		})
	}
}

func TestCreateBooking_RoomConflict(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	f.roomRepo.On("GetRoom", ctx, int64(5)).Return(&model.Room{
		ID:            5,
		HostID:        2,
		Capacity:      4,
		PricePerNight: 1000000,
	}, nil)
	f.bookingRepo.On("HasConflict", ctx, int64(5), mock.Anything, mock.Anything, int64(0)).Return(true, nil)

	_, err := f.service.CreateBooking(ctx, &model.CreateBookingRequest{
		RoomID:   5,
		CheckIn:  futureDate(10),
		CheckOut: futureDate(12),
		Guests:   2,
	}, 1)

	assert.ErrorIs(t, err, model.ErrRoomConflict)
	f.bookingRepo.AssertNotCalled(t, "InsertBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePaymentStatus_PendingToPaidSettlesPayout(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	code := "SAVE10"
	booking := &model.Booking{
		ID:            1,
		RoomID:        5,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentPending,
		TotalPrice:    1850000,
		CouponCode:    &code,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.wallet.On("Credit", ctx, mock.Anything, int64(2), mock.MatchedBy(func(entry service.LedgerEntry) bool {
		return entry.Type == model.TypeDeposit &&
			entry.Amount == 1850000 &&
			entry.Method == "booking_payout" &&
			entry.GatewayRef != nil && *entry.GatewayRef == "MOMO123"
	})).Return(&model.Transaction{Reference: "ref-credit"}, nil)
	f.couponRepo.On("IncrementUsageIfBelowCap", ctx, "SAVE10", mock.Anything).Return(true, nil)
	f.bookingRepo.On("UpdateBooking", ctx, booking, mock.Anything).Return(nil)

	result, err := f.service.UpdatePaymentStatus(ctx, 1, model.PaymentPaid, "MOMO123")

	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, result.PaymentStatus)
	assert.Equal(t, model.BookingConfirmed, result.Status)
	assert.NotNil(t, result.PayoutSettledAt)
}

func TestUpdatePaymentStatus_RepeatedPaidIsNoop(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingConfirmed,
		PaymentStatus: model.PaymentPaid,
		TotalPrice:    1850000,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)

	result, err := f.service.UpdatePaymentStatus(ctx, 1, model.PaymentPaid, "MOMO123")

	require.NoError(t, err)
	assert.Equal(t, model.PaymentPaid, result.PaymentStatus)
	f.wallet.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.bookingRepo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePaymentStatus_InvalidTransition(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentFailed,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)

	_, err := f.service.UpdatePaymentStatus(ctx, 1, model.PaymentPaid, "")

	assert.ErrorIs(t, err, model.ErrInvalidTransition)
}

func TestUpdatePaymentStatus_RefundStatusesReservedForRefundPaths(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingConfirmed,
		PaymentStatus: model.PaymentPaid,
		TotalPrice:    1850000,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)

	for _, status := range []model.PaymentStatus{model.PaymentRefunded, model.PaymentPartialRefunded} {
		t.Run(status.String(), func(t *testing.T) {
			_, err := f.service.UpdatePaymentStatus(ctx, 1, status, "")
			assert.ErrorIs(t, err, model.ErrInvalidTransition)
		})
	}
	f.bookingRepo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdatePaymentStatus_CouponIncrementErrorAbortsPayment(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	code := "SAVE10"
	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentPending,
		TotalPrice:    1850000,
		CouponCode:    &code,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.wallet.On("Credit", ctx, mock.Anything, int64(2), mock.Anything).
		Return(&model.Transaction{Reference: "ref-credit"}, nil)
	f.couponRepo.On("IncrementUsageIfBelowCap", ctx, "SAVE10", mock.Anything).Return(false, assert.AnError)

	_, err := f.service.UpdatePaymentStatus(ctx, 1, model.PaymentPaid, "MOMO123")

	assert.ErrorIs(t, err, assert.AnError)
	f.bookingRepo.AssertNotCalled(t, "UpdateBooking", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessHostPayment_DuplicateSettlement(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	settled := time.Now()
	booking := &model.Booking{
		ID:              1,
		HostID:          2,
		Status:          model.BookingConfirmed,
		PaymentStatus:   model.PaymentPaid,
		TotalPrice:      1850000,
		PayoutSettledAt: &settled,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)

	_, err := f.service.ProcessHostPayment(ctx, 1)

	assert.ErrorIs(t, err, model.ErrDuplicateSettlement)
	f.wallet.AssertNotCalled(t, "Credit", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPayWithWallet_HappyPath(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentPending,
		TotalPrice:    1850000,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.wallet.On("TransferTx", ctx, mock.Anything, mock.MatchedBy(func(p service.TransferParams) bool {
		return p.FromUserID == 1 &&
			p.ToUserID == 2 &&
			p.Amount == 1850000 &&
			p.DebitType == model.TypePayment &&
			p.CreditType == model.TypeDeposit &&
			p.Method == "wallet"
	})).Return(&model.Transaction{Reference: "ref-debit"}, &model.Transaction{Reference: "ref-credit"}, nil)
	f.bookingRepo.On("UpdateBooking", ctx, booking, mock.Anything).Return(nil)

	result, err := f.service.PayWithWallet(ctx, 1, 1)

	require.NoError(t, err)
	assert.Equal(t, model.BookingConfirmed, result.Status)
	assert.Equal(t, model.PaymentPaid, result.PaymentStatus)
	assert.NotNil(t, result.PayoutSettledAt)
}

func TestPayWithWallet_AlreadyPaid(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingConfirmed,
		PaymentStatus: model.PaymentPaid,
		TotalPrice:    1850000,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)

	_, err := f.service.PayWithWallet(ctx, 1, 1)

	assert.ErrorIs(t, err, model.ErrDuplicateSettlement)
	f.wallet.AssertNotCalled(t, "TransferTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestPayWithWallet_WrongGuest(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentPending,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)

	_, err := f.service.PayWithWallet(ctx, 1, 99)

	assert.ErrorIs(t, err, model.ErrUnauthorized)
}

func TestCancel_FullRefundFiveDaysAhead(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		CheckIn:       time.Now().Add(5 * 24 * time.Hour),
		Status:        model.BookingConfirmed,
		PaymentStatus: model.PaymentPaid,
		TotalPrice:    1850000,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.bookingRepo.On("UpdateBooking", ctx, booking, mock.Anything).Return(nil)
	f.wallet.On("TransferTx", ctx, mock.Anything, mock.MatchedBy(func(p service.TransferParams) bool {
		return p.FromUserID == 2 &&
			p.ToUserID == 1 &&
			p.Amount == 1850000 &&
			p.CreditType == model.TypeRefund
	})).Return(&model.Transaction{Reference: "ref-debit"}, &model.Transaction{Reference: "ref-credit"}, nil)
	f.bookingRepo.On("GetBooking", ctx, int64(1)).Return(booking, nil)

	result, err := f.service.Cancel(ctx, 1, model.ActorGuest, 1, "change of plans")

	require.NoError(t, err)
	assert.Equal(t, model.BookingCancelled, result.Status)
	assert.Equal(t, model.PaymentRefunded, result.PaymentStatus)
	assert.Equal(t, model.RefundCompleted, result.Refund.Status)
	assert.Equal(t, int64(1850000), result.Refund.Amount)
	assert.Equal(t, 100, result.Refund.Percentage)
	require.NotNil(t, result.CancelledBy)
	assert.Equal(t, model.ActorGuest, *result.CancelledBy)
}

func TestCancel_HalfRefundOneDayAhead(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		CheckIn:       time.Now().Add(24 * time.Hour),
		Status:        model.BookingConfirmed,
		PaymentStatus: model.PaymentPaid,
		TotalPrice:    1850000,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.bookingRepo.On("UpdateBooking", ctx, booking, mock.Anything).Return(nil)
	f.wallet.On("TransferTx", ctx, mock.Anything, mock.MatchedBy(func(p service.TransferParams) bool {
		return p.Amount == 925000
	})).Return(&model.Transaction{Reference: "ref-debit"}, &model.Transaction{Reference: "ref-credit"}, nil)
	f.bookingRepo.On("GetBooking", ctx, int64(1)).Return(booking, nil)

	result, err := f.service.Cancel(ctx, 1, model.ActorGuest, 1, "")

	require.NoError(t, err)
	assert.Equal(t, model.PaymentPartialRefunded, result.PaymentStatus)
	assert.Equal(t, int64(925000), result.Refund.Amount)
	assert.Equal(t, 50, result.Refund.Percentage)
}

func TestCancel_AfterCheckInNoRefund(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		CheckIn:       time.Now().Add(-time.Hour),
		Status:        model.BookingConfirmed,
		PaymentStatus: model.PaymentPaid,
		TotalPrice:    1850000,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.bookingRepo.On("UpdateBooking", ctx, booking, mock.Anything).Return(nil)

	result, err := f.service.Cancel(ctx, 1, model.ActorGuest, 1, "")

	require.NoError(t, err)
	assert.Equal(t, model.BookingCancelled, result.Status)
	assert.Equal(t, model.PaymentPaid, result.PaymentStatus)
	assert.Equal(t, model.RefundNone, result.Refund.Status)
	f.wallet.AssertNotCalled(t, "TransferTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_UnpaidBookingSkipsRefund(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		CheckIn:       time.Now().Add(5 * 24 * time.Hour),
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentPending,
		TotalPrice:    1850000,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.bookingRepo.On("UpdateBooking", ctx, booking, mock.Anything).Return(nil)

	result, err := f.service.Cancel(ctx, 1, model.ActorGuest, 1, "")

	require.NoError(t, err)
	assert.Equal(t, model.BookingCancelled, result.Status)
	f.wallet.AssertNotCalled(t, "TransferTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestCancel_CompletedBookingRejected(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingCompleted,
		PaymentStatus: model.PaymentPaid,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)

	_, err := f.service.Cancel(ctx, 1, model.ActorGuest, 1, "")

	assert.ErrorIs(t, err, model.ErrInvalidTransition)
}

func TestCancel_RefundFailureDoesNotBlockCancellation(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		CheckIn:       time.Now().Add(5 * 24 * time.Hour),
		Status:        model.BookingConfirmed,
		PaymentStatus: model.PaymentPaid,
		TotalPrice:    1850000,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.bookingRepo.On("UpdateBooking", ctx, booking, mock.Anything).Return(nil)
	// Host wallet cannot cover the refund.
	f.wallet.On("TransferTx", ctx, mock.Anything, mock.Anything).Return(nil, nil, model.ErrInsufficientBalance)
	f.bookingRepo.On("GetBooking", ctx, int64(1)).Return(booking, nil)

	result, err := f.service.Cancel(ctx, 1, model.ActorGuest, 1, "")

	require.NoError(t, err)
	assert.Equal(t, model.BookingCancelled, result.Status)
	assert.Equal(t, model.RefundRejected, result.Refund.Status)
	assert.Equal(t, model.PaymentPaid, result.PaymentStatus)
}

func TestRequestRefund_DuplicateRequest(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingConfirmed,
		PaymentStatus: model.PaymentPaid,
		RefundRequest: model.RefundRequest{Status: model.RequestPending},
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)

	_, err := f.service.RequestRefund(ctx, 1, 1, "please")

	assert.ErrorIs(t, err, model.ErrDuplicateSettlement)
}

func TestRequestRefund_UnpaidBooking(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentPending,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)

	_, err := f.service.RequestRefund(ctx, 1, 1, "please")

	assert.ErrorIs(t, err, model.ErrRefundPolicy)
}

func TestProcessHostRefundRequest_Approve(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	requested := time.Now().Add(-time.Hour)
	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		CheckIn:       time.Now().Add(5 * 24 * time.Hour),
		Status:        model.BookingConfirmed,
		PaymentStatus: model.PaymentPaid,
		TotalPrice:    1850000,
		RefundRequest: model.RefundRequest{
			Status:      model.RequestPending,
			Reason:      "trip cancelled",
			RequestedAt: &requested,
		},
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.wallet.On("TransferTx", ctx, mock.Anything, mock.MatchedBy(func(p service.TransferParams) bool {
		return p.FromUserID == 2 && p.ToUserID == 1 && p.Amount == 1850000
	})).Return(&model.Transaction{Reference: "ref-debit"}, &model.Transaction{Reference: "ref-credit"}, nil)
	f.bookingRepo.On("UpdateBooking", ctx, booking, mock.Anything).Return(nil)

	result, err := f.service.ProcessHostRefundRequest(ctx, 1, 2, true, "")

	require.NoError(t, err)
	assert.Equal(t, model.RequestApproved, result.RefundRequest.Status)
	assert.Equal(t, model.BookingCancelled, result.Status)
	assert.Equal(t, model.PaymentRefunded, result.PaymentStatus)
	assert.Equal(t, model.RefundCompleted, result.Refund.Status)
	assert.NotNil(t, result.RefundRequest.ResolvedAt)
}

func TestProcessHostRefundRequest_Reject(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingConfirmed,
		PaymentStatus: model.PaymentPaid,
		TotalPrice:    1850000,
		RefundRequest: model.RefundRequest{Status: model.RequestPending},
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.bookingRepo.On("UpdateBooking", ctx, booking, mock.Anything).Return(nil)

	result, err := f.service.ProcessHostRefundRequest(ctx, 1, 2, false, "no availability to relet")

	require.NoError(t, err)
	assert.Equal(t, model.RequestRejected, result.RefundRequest.Status)
	assert.Equal(t, model.BookingConfirmed, result.Status)
	assert.Equal(t, model.PaymentPaid, result.PaymentStatus)
	f.wallet.AssertNotCalled(t, "TransferTx", mock.Anything, mock.Anything, mock.Anything)
}

func TestProcessManualRefund_RetriesRejectedRefund(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingCancelled,
		PaymentStatus: model.PaymentPaid,
		TotalPrice:    1850000,
		Refund: model.Refund{
			Status:     model.RefundRejected,
			Amount:     925000,
			Percentage: 50,
		},
	}

	f.bookingRepo.On("GetBooking", ctx, int64(1)).Return(booking, nil)
	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.wallet.On("TransferTx", ctx, mock.Anything, mock.MatchedBy(func(p service.TransferParams) bool {
		return p.Amount == 925000
	})).Return(&model.Transaction{Reference: "ref-debit"}, &model.Transaction{Reference: "ref-credit"}, nil)
	f.bookingRepo.On("UpdateBooking", ctx, booking, mock.Anything).Return(nil)

	result, err := f.service.ProcessManualRefund(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, model.RefundCompleted, result.Refund.Status)
	assert.Equal(t, model.PaymentPartialRefunded, result.PaymentStatus)
}

func TestUpdateBookingStatus_ConfirmedToCompleted(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingConfirmed,
		PaymentStatus: model.PaymentPaid,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)
	f.bookingRepo.On("UpdateBooking", ctx, booking, mock.Anything).Return(nil)

	result, err := f.service.UpdateBookingStatus(ctx, 1, model.BookingCompleted, model.ActorHost, 2)

	require.NoError(t, err)
	assert.Equal(t, model.BookingCompleted, result.Status)
}

func TestUpdateBookingStatus_PendingToCompletedRejected(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	booking := &model.Booking{
		ID:            1,
		GuestID:       1,
		HostID:        2,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentPending,
	}

	f.dbManager.On("WithTransaction", ctx, mock.Anything).Return(passthroughTx)
	f.bookingRepo.On("GetBookingForUpdate", ctx, int64(1), mock.Anything).Return(booking, nil)

	_, err := f.service.UpdateBookingStatus(ctx, 1, model.BookingCompleted, model.ActorHost, 2)

	assert.ErrorIs(t, err, model.ErrInvalidTransition)
}

func TestCheckRoomAvailability(t *testing.T) {
	ctx := context.Background()
	f := newBookingFixture(t)

	f.bookingRepo.On("HasConflict", ctx, int64(5), mock.Anything, mock.Anything, int64(0)).Return(false, nil)

	resp, err := f.service.CheckRoomAvailability(ctx, 5, futureDate(10), futureDate(12))

	require.NoError(t, err)
	assert.True(t, resp.Available)
}
