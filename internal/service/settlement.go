package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"homestay-settlement/internal/cache"
	"homestay-settlement/internal/gateway"
	"homestay-settlement/internal/model"

	"github.com/rs/zerolog"
)

type SettlementServiceImpl struct {
	providers map[string]gateway.Provider
	bookings  BookingService
	dedup     cache.Store
	dedupTTL  time.Duration
	logger    zerolog.Logger
}

func NewSettlementService(
	providers []gateway.Provider,
	bookings BookingService,
	dedup cache.Store,
	dedupTTL time.Duration,
	logger zerolog.Logger,
) SettlementService {
	byName := make(map[string]gateway.Provider, len(providers))
	for _, p := range providers {
		byName[p.Name()] = p
	}
	return &SettlementServiceImpl{
		providers: byName,
		bookings:  bookings,
		dedup:     dedup,
		dedupTTL:  dedupTTL,
		logger:    logger,
	}
}

// HandleCallback verifies a gateway notification and applies the payment
// result. Nothing is mutated before the signature checks out. The TTL dedup
// key short-circuits retried callbacks cheaply; the payment-status
// transition guard remains the correctness backstop either way.
func (s *SettlementServiceImpl) HandleCallback(ctx context.Context, provider string, payload map[string]string) error {
	p, ok := s.providers[provider]
	if !ok {
		return fmt.Errorf("%w: unknown provider %q", model.ErrInvalidSignature, provider)
	}

	n, err := p.Verify(payload)
	if err != nil {
		s.logger.Warn().Err(err).Str("provider", provider).Msg("gateway callback rejected")
		return err
	}

	if n.GatewayRef != "" {
		key := "gateway:callback:" + n.Provider + ":" + n.GatewayRef
		fresh, err := s.dedup.SetNX(ctx, key, strconv.FormatInt(n.BookingID, 10), s.dedupTTL)
		if err != nil {
			// Dedup is an optimization; fall through to the idempotent transition.
			s.logger.Warn().Err(err).Str("key", key).Msg("callback dedup unavailable")
		} else if !fresh {
			s.logger.Info().
				Str("provider", n.Provider).
				Str("gateway_ref", n.GatewayRef).
				Msg("gateway callback already seen, skipping")
			return nil
		}
	}

	if !n.Success {
		s.logger.Info().
			Int64("booking_id", n.BookingID).
			Str("provider", n.Provider).
			Str("reason", n.FailReason).
			Msg("gateway reported payment failure")
		_, err := s.bookings.UpdatePaymentStatus(ctx, n.BookingID, model.PaymentFailed, n.GatewayRef)
		return err
	}

	booking, err := s.bookings.GetBooking(ctx, n.BookingID)
	if err != nil {
		return err
	}
	if booking.TotalPrice != n.Amount {
		return fmt.Errorf("%w: gateway amount %d, booking total %d",
			model.ErrInvalidAmount, n.Amount, booking.TotalPrice)
	}

	_, err = s.bookings.UpdatePaymentStatus(ctx, n.BookingID, model.PaymentPaid, n.GatewayRef)
	if err != nil {
		return err
	}

	s.logger.Info().
		Int64("booking_id", n.BookingID).
		Str("provider", n.Provider).
		Str("gateway_ref", n.GatewayRef).
		Int64("amount", n.Amount).
		Msg("gateway payment settled")
	return nil
}
