package service

import (
	"context"
	"fmt"
	"time"

	"homestay-settlement/internal/model"
	"homestay-settlement/internal/repository"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

type BookingServiceImpl struct {
	bookingRepo repository.BookingRepository
	roomRepo    repository.RoomRepository
	couponRepo  repository.CouponRepository
	wallet      WalletService
	pricing     PricingService
	dbManager   repository.DBManager
	logger      zerolog.Logger
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	roomRepo repository.RoomRepository,
	couponRepo repository.CouponRepository,
	wallet WalletService,
	pricing PricingService,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) BookingService {
	return &BookingServiceImpl{
		bookingRepo: bookingRepo,
		roomRepo:    roomRepo,
		couponRepo:  couponRepo,
		wallet:      wallet,
		pricing:     pricing,
		dbManager:   dbManager,
		logger:      logger,
	}
}

// refundAmount computes round(total * pct / 100).
func refundAmount(total int64, pct int) int64 {
	return decimal.NewFromInt(total).
		Mul(decimal.NewFromInt(int64(pct))).
		Div(decimal.NewFromInt(100)).
		Round(0).IntPart()
}

// parseDateRange validates and parses a [checkIn, checkOut) request: both
// dates well formed, checkIn not in the past, checkOut after checkIn.
func parseDateRange(checkIn, checkOut string) (time.Time, time.Time, error) {
	in, err := time.Parse(dateLayout, checkIn)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad check-in date", model.ErrInvalidDateRange)
	}
	out, err := time.Parse(dateLayout, checkOut)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: bad check-out date", model.ErrInvalidDateRange)
	}
	if !out.After(in) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check-out must follow check-in", model.ErrInvalidDateRange)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if in.Before(today) {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: check-in is in the past", model.ErrInvalidDateRange)
	}
	return in, out, nil
}

func (s *BookingServiceImpl) CreateBooking(ctx context.Context, req *model.CreateBookingRequest, guestID int64) (*model.Booking, error) {
	checkIn, checkOut, err := parseDateRange(req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}

	room, err := s.roomRepo.GetRoom(ctx, req.RoomID)
	if err != nil {
		return nil, err
	}
	if req.Guests > room.Capacity {
		return nil, fmt.Errorf("%w: room holds %d", model.ErrCapacityExceeded, room.Capacity)
	}

	nights := int64(checkOut.Sub(checkIn).Hours() / 24)
	basePrice := nights * room.PricePerNight

	booking := &model.Booking{
		RoomID:        room.ID,
		GuestID:       guestID,
		HostID:        room.HostID,
		CheckIn:       checkIn,
		CheckOut:      checkOut,
		Guests:        req.Guests,
		Status:        model.BookingPending,
		PaymentStatus: model.PaymentPending,
		OriginalPrice: basePrice,
		TotalPrice:    basePrice,
	}

	if req.CouponCode != "" {
		quote, err := s.pricing.Quote(ctx, req.CouponCode, basePrice, guestID, room.HostID)
		if err != nil {
			return nil, err
		}
		booking.DiscountAmount = quote.DiscountAmount
		booking.TotalPrice = quote.FinalPrice
		booking.CouponCode = &req.CouponCode
	}

	conflict, err := s.bookingRepo.HasConflict(ctx, room.ID, checkIn, checkOut, 0)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	if conflict {
		return nil, model.ErrRoomConflict
	}

	// The insert re-enforces availability through the exclusion constraint;
	// a concurrent overlapping request surfaces here as ErrRoomConflict.
	err = s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		return s.bookingRepo.InsertBooking(ctx, booking, tx)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("room_id", room.ID).
		Int64("guest_id", guestID).
		Int64("total_price", booking.TotalPrice).
		Msg("booking created")
	return booking, nil
}

func (s *BookingServiceImpl) GetBooking(ctx context.Context, id int64) (*model.Booking, error) {
	return s.bookingRepo.GetBooking(ctx, id)
}

func (s *BookingServiceImpl) ListBookings(ctx context.Context, guestID int64, limit, offset int) ([]*model.Booking, error) {
	return s.bookingRepo.ListByGuest(ctx, guestID, limit, offset)
}

func (s *BookingServiceImpl) CheckRoomAvailability(ctx context.Context, roomID int64, checkIn, checkOut string) (*model.AvailabilityResponse, error) {
	in, out, err := parseDateRange(checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	conflict, err := s.bookingRepo.HasConflict(ctx, roomID, in, out, 0)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}
	return &model.AvailabilityResponse{
		RoomID:    roomID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Available: !conflict,
	}, nil
}

func (s *BookingServiceImpl) UpdateBookingStatus(ctx context.Context, bookingID int64, status model.BookingStatus, actor model.Actor, actorID int64) (*model.Booking, error) {
	if status == model.BookingCancelled {
		return s.Cancel(ctx, bookingID, actor, actorID, "")
	}

	var booking *model.Booking
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		b, err := s.bookingRepo.GetBookingForUpdate(ctx, bookingID, tx)
		if err != nil {
			return err
		}
		if err := authorize(b, actor, actorID); err != nil {
			return err
		}

		// Completion is the only direct transition; payment drives the rest.
		if status != model.BookingCompleted || b.Status != model.BookingConfirmed {
			return fmt.Errorf("%w: %s -> %s", model.ErrInvalidTransition, b.Status, status)
		}

		b.Status = model.BookingCompleted
		if err := s.bookingRepo.UpdateBooking(ctx, b, tx); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// authorize checks that the actor has rights over the booking.
func authorize(b *model.Booking, actor model.Actor, actorID int64) error {
	switch actor {
	case model.ActorGuest:
		if actorID != b.GuestID {
			return fmt.Errorf("%w: not the booking guest", model.ErrUnauthorized)
		}
	case model.ActorHost:
		if actorID != b.HostID {
			return fmt.Errorf("%w: not the booking host", model.ErrUnauthorized)
		}
	case model.ActorSystem:
	default:
		return model.ErrInvalidActor
	}
	return nil
}

// UpdatePaymentStatus transitions the payment state. A repeated transition to
// the current status is a no-op, which makes retried gateway callbacks safe:
// only the one pending→paid transition settles the host payout.
func (s *BookingServiceImpl) UpdatePaymentStatus(ctx context.Context, bookingID int64, status model.PaymentStatus, gatewayRef string) (*model.Booking, error) {
	var booking *model.Booking
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		b, err := s.bookingRepo.GetBookingForUpdate(ctx, bookingID, tx)
		if err != nil {
			return err
		}
		booking = b

		if b.PaymentStatus == status {
			s.logger.Info().
				Int64("booking_id", b.ID).
				Str("payment_status", status.String()).
				Str("gateway_ref", gatewayRef).
				Msg("payment status unchanged, skipping")
			return nil
		}

		// Refund statuses are set only by the cancel/refund paths, which
		// move the money alongside the status; allowing them here would
		// desynchronize booking state from the ledger.
		allowed := map[model.PaymentStatus][]model.PaymentStatus{
			model.PaymentPending: {model.PaymentPaid, model.PaymentFailed},
		}
		ok := false
		for _, next := range allowed[b.PaymentStatus] {
			if next == status {
				ok = true
				break
			}
		}
		if !ok {
			return fmt.Errorf("%w: %s -> %s", model.ErrInvalidTransition, b.PaymentStatus, status)
		}

		if b.PaymentStatus == model.PaymentPending && status == model.PaymentPaid {
			if err := s.settleHostPayout(ctx, tx, b, gatewayRef); err != nil {
				return err
			}
			if b.Status == model.BookingPending {
				b.Status = model.BookingConfirmed
			}
			if err := s.markCouponUsed(ctx, tx, b); err != nil {
				return err
			}
		}

		b.PaymentStatus = status
		return s.bookingRepo.UpdateBooking(ctx, b, tx)
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// settleHostPayout credits the host wallet with the booking total and sets
// the payout marker, all inside the caller's transaction. The marker, not
// the payment status, is what makes a second payout attempt fail.
func (s *BookingServiceImpl) settleHostPayout(ctx context.Context, tx pgx.Tx, b *model.Booking, gatewayRef string) error {
	if b.PayoutSettledAt != nil {
		return fmt.Errorf("%w: payout for booking %d", model.ErrDuplicateSettlement, b.ID)
	}

	entry := LedgerEntry{
		Type:      model.TypeDeposit,
		Amount:    b.TotalPrice,
		BookingID: &b.ID,
		Method:    "booking_payout",
	}
	if gatewayRef != "" {
		entry.GatewayRef = &gatewayRef
	}
	if _, err := s.wallet.Credit(ctx, tx, b.HostID, entry); err != nil {
		return fmt.Errorf("host payout: %w", err)
	}

	now := time.Now()
	b.PayoutSettledAt = &now

	s.logger.Info().
		Int64("booking_id", b.ID).
		Int64("host_id", b.HostID).
		Int64("amount", b.TotalPrice).
		Str("gateway_ref", gatewayRef).
		Msg("host payout settled")
	return nil
}

// markCouponUsed bumps the coupon counter at payment time. The conditional
// update enforces the global cap; hitting it is logged, not fatal, because
// the discount was already granted at booking time. A query error must
// propagate: the surrounding transaction is already aborted and every later
// statement in it would fail.
func (s *BookingServiceImpl) markCouponUsed(ctx context.Context, tx pgx.Tx, b *model.Booking) error {
	if b.CouponCode == nil {
		return nil
	}
	incremented, err := s.couponRepo.IncrementUsageIfBelowCap(ctx, *b.CouponCode, tx)
	if err != nil {
		return fmt.Errorf("increment coupon usage: %w", err)
	}
	if !incremented {
		s.logger.Warn().
			Str("code", *b.CouponCode).
			Int64("booking_id", b.ID).
			Msg("coupon cap reached at payment time")
	}
	return nil
}

// ProcessHostPayment settles the host payout for an already-paid booking.
// The normal flow settles inside UpdatePaymentStatus; this explicit entry
// point exists for operator retries and is guarded by the payout marker.
func (s *BookingServiceImpl) ProcessHostPayment(ctx context.Context, bookingID int64) (*model.Booking, error) {
	var booking *model.Booking
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		b, err := s.bookingRepo.GetBookingForUpdate(ctx, bookingID, tx)
		if err != nil {
			return err
		}
		if b.PaymentStatus != model.PaymentPaid {
			return fmt.Errorf("%w: booking %d is %s", model.ErrInvalidPaymentStatus, b.ID, b.PaymentStatus)
		}
		if err := s.settleHostPayout(ctx, tx, b, ""); err != nil {
			return err
		}
		if err := s.bookingRepo.UpdateBooking(ctx, b, tx); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// PayWithWallet settles a booking from the guest wallet: debit guest, credit
// host, confirm the booking, one database transaction.
func (s *BookingServiceImpl) PayWithWallet(ctx context.Context, bookingID, guestID int64) (*model.Booking, error) {
	var booking *model.Booking
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		b, err := s.bookingRepo.GetBookingForUpdate(ctx, bookingID, tx)
		if err != nil {
			return err
		}
		if err := authorize(b, model.ActorGuest, guestID); err != nil {
			return err
		}
		if b.PaymentStatus != model.PaymentPending {
			return fmt.Errorf("%w: booking %d already %s", model.ErrDuplicateSettlement, b.ID, b.PaymentStatus)
		}
		if b.Status != model.BookingPending {
			return fmt.Errorf("%w: booking %d is %s", model.ErrInvalidTransition, b.ID, b.Status)
		}

		if _, _, err := s.wallet.TransferTx(ctx, tx, TransferParams{
			FromUserID: b.GuestID,
			ToUserID:   b.HostID,
			Amount:     b.TotalPrice,
			BookingID:  &b.ID,
			DebitType:  model.TypePayment,
			CreditType: model.TypeDeposit,
			Method:     "wallet",
		}); err != nil {
			return err
		}

		now := time.Now()
		b.PayoutSettledAt = &now
		b.PaymentStatus = model.PaymentPaid
		b.Status = model.BookingConfirmed
		if err := s.markCouponUsed(ctx, tx, b); err != nil {
			return err
		}

		if err := s.bookingRepo.UpdateBooking(ctx, b, tx); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Int64("guest_id", guestID).
		Int64("amount", booking.TotalPrice).
		Msg("booking paid from wallet")
	return booking, nil
}

// Cancel marks the booking cancelled and, when a refund is due, executes it
// afterwards. Cancellation commits first: a refund failure never blocks it,
// but the failure is recorded on the booking and stays retriable.
func (s *BookingServiceImpl) Cancel(ctx context.Context, bookingID int64, actor model.Actor, actorID int64, reason string) (*model.Booking, error) {
	var booking *model.Booking
	refundDue := false

	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		b, err := s.bookingRepo.GetBookingForUpdate(ctx, bookingID, tx)
		if err != nil {
			return err
		}
		if err := authorize(b, actor, actorID); err != nil {
			return err
		}
		if !b.Status.Blocking() {
			return fmt.Errorf("%w: booking %d is %s", model.ErrInvalidTransition, b.ID, b.Status)
		}

		pct := RefundPercentage(actor, b.CheckIn, time.Now())
		b.Status = model.BookingCancelled
		b.CancelledBy = &actor

		if b.PaymentStatus == model.PaymentPaid && pct > 0 {
			b.Refund = model.Refund{
				Status:     model.RefundPending,
				Amount:     refundAmount(b.TotalPrice, pct),
				Percentage: pct,
				Reason:     reason,
			}
			refundDue = true
		}

		if err := s.bookingRepo.UpdateBooking(ctx, b, tx); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Str("cancelled_by", actor.String()).
		Int("refund_percentage", booking.Refund.Percentage).
		Msg("booking cancelled")

	if refundDue {
		if err := s.executeRefund(ctx, booking.ID); err != nil {
			s.logger.Error().Err(err).
				Int64("booking_id", booking.ID).
				Msg("refund failed after cancellation")
			s.recordRefundFailure(ctx, booking.ID, err.Error())
		}
		// Re-read so the caller sees the refund outcome.
		return s.bookingRepo.GetBooking(ctx, booking.ID)
	}
	return booking, nil
}

// executeRefund moves the recorded refund amount from the host wallet back
// to the guest. Both legs and the booking update are one transaction.
func (s *BookingServiceImpl) executeRefund(ctx context.Context, bookingID int64) error {
	return s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		b, err := s.bookingRepo.GetBookingForUpdate(ctx, bookingID, tx)
		if err != nil {
			return err
		}
		if b.Refund.Status == model.RefundCompleted {
			return fmt.Errorf("%w: refund for booking %d", model.ErrDuplicateSettlement, b.ID)
		}
		if b.Refund.Amount <= 0 {
			return fmt.Errorf("%w: no refund recorded", model.ErrRefundPolicy)
		}

		_, credit, err := s.wallet.TransferTx(ctx, tx, TransferParams{
			FromUserID: b.HostID,
			ToUserID:   b.GuestID,
			Amount:     b.Refund.Amount,
			BookingID:  &b.ID,
			DebitType:  model.TypePayment,
			CreditType: model.TypeRefund,
			Method:     "wallet",
			Metadata:   map[string]string{"reason": "booking_refund"},
		})
		if err != nil {
			return err
		}

		b.Refund.Status = model.RefundCompleted
		b.Refund.TransactionRef = &credit.Reference
		if b.Refund.Percentage >= 100 {
			b.PaymentStatus = model.PaymentRefunded
		} else {
			b.PaymentStatus = model.PaymentPartialRefunded
		}
		return s.bookingRepo.UpdateBooking(ctx, b, tx)
	})
}

// recordRefundFailure persists the rejected refund so operators can see and
// retry it. Best effort: its own error is only logged.
func (s *BookingServiceImpl) recordRefundFailure(ctx context.Context, bookingID int64, reason string) {
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		b, err := s.bookingRepo.GetBookingForUpdate(ctx, bookingID, tx)
		if err != nil {
			return err
		}
		b.Refund.Status = model.RefundRejected
		b.Refund.Reason = reason
		return s.bookingRepo.UpdateBooking(ctx, b, tx)
	})
	if err != nil {
		s.logger.Error().Err(err).
			Int64("booking_id", bookingID).
			Msg("failed to record refund failure")
	}
}

func (s *BookingServiceImpl) RequestRefund(ctx context.Context, bookingID, guestID int64, reason string) (*model.Booking, error) {
	var booking *model.Booking
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		b, err := s.bookingRepo.GetBookingForUpdate(ctx, bookingID, tx)
		if err != nil {
			return err
		}
		if err := authorize(b, model.ActorGuest, guestID); err != nil {
			return err
		}
		if b.PaymentStatus != model.PaymentPaid || b.Status != model.BookingConfirmed {
			return fmt.Errorf("%w: booking %d is %s/%s", model.ErrRefundPolicy, b.ID, b.Status, b.PaymentStatus)
		}
		if b.RefundRequest.Status != "" {
			return fmt.Errorf("%w: refund request for booking %d", model.ErrDuplicateSettlement, b.ID)
		}

		now := time.Now()
		b.RefundRequest = model.RefundRequest{
			Status:      model.RequestPending,
			Reason:      reason,
			RequestedAt: &now,
		}
		if err := s.bookingRepo.UpdateBooking(ctx, b, tx); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return booking, nil
}

// ProcessHostRefundRequest resolves a guest's refund request. Approval runs
// the same percentage policy as a guest cancellation and executes the
// host→guest transfer in the same transaction as the decision, so a failed
// credit rolls the whole approval back.
func (s *BookingServiceImpl) ProcessHostRefundRequest(ctx context.Context, bookingID, hostID int64, approve bool, reason string) (*model.Booking, error) {
	var booking *model.Booking
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		b, err := s.bookingRepo.GetBookingForUpdate(ctx, bookingID, tx)
		if err != nil {
			return err
		}
		if err := authorize(b, model.ActorHost, hostID); err != nil {
			return err
		}
		if b.RefundRequest.Status != model.RequestPending {
			return fmt.Errorf("%w: refund request for booking %d already %s", model.ErrDuplicateSettlement, b.ID, b.RefundRequest.Status)
		}

		now := time.Now()
		b.RefundRequest.ResolvedAt = &now

		if !approve {
			b.RefundRequest.Status = model.RequestRejected
			if reason != "" {
				b.RefundRequest.Reason = reason
			}
			if err := s.bookingRepo.UpdateBooking(ctx, b, tx); err != nil {
				return err
			}
			booking = b
			return nil
		}

		pct := RefundPercentage(model.ActorGuest, b.CheckIn, now)
		if pct == 0 {
			return fmt.Errorf("%w: no refund due at this time", model.ErrRefundPolicy)
		}
		amount := refundAmount(b.TotalPrice, pct)

		_, credit, err := s.wallet.TransferTx(ctx, tx, TransferParams{
			FromUserID: b.HostID,
			ToUserID:   b.GuestID,
			Amount:     amount,
			BookingID:  &b.ID,
			DebitType:  model.TypePayment,
			CreditType: model.TypeRefund,
			Method:     "wallet",
			Metadata:   map[string]string{"reason": "refund_request"},
		})
		if err != nil {
			return err
		}

		guest := model.ActorGuest
		b.RefundRequest.Status = model.RequestApproved
		b.Status = model.BookingCancelled
		b.CancelledBy = &guest
		b.Refund = model.Refund{
			Status:         model.RefundCompleted,
			Amount:         amount,
			Percentage:     pct,
			Reason:         b.RefundRequest.Reason,
			TransactionRef: &credit.Reference,
		}
		if pct >= 100 {
			b.PaymentStatus = model.PaymentRefunded
		} else {
			b.PaymentStatus = model.PaymentPartialRefunded
		}
		if err := s.bookingRepo.UpdateBooking(ctx, b, tx); err != nil {
			return err
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("booking_id", booking.ID).
		Bool("approved", approve).
		Msg("refund request resolved")
	return booking, nil
}

// ProcessManualRefund retries a refund that was recorded rejected after a
// cancellation. Operator path.
func (s *BookingServiceImpl) ProcessManualRefund(ctx context.Context, bookingID int64) (*model.Booking, error) {
	b, err := s.bookingRepo.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if b.Status != model.BookingCancelled {
		return nil, fmt.Errorf("%w: booking %d is %s", model.ErrRefundPolicy, b.ID, b.Status)
	}
	if b.Refund.Status != model.RefundRejected && b.Refund.Status != model.RefundPending {
		return nil, fmt.Errorf("%w: refund for booking %d is %q", model.ErrRefundPolicy, b.ID, b.Refund.Status)
	}

	if err := s.executeRefund(ctx, bookingID); err != nil {
		return nil, err
	}
	return s.bookingRepo.GetBooking(ctx, bookingID)
}
