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

type PricingServiceImpl struct {
	couponRepo  repository.CouponRepository
	bookingRepo repository.BookingRepository
	dbManager   repository.DBManager
	logger      zerolog.Logger
}

func NewPricingService(
	couponRepo repository.CouponRepository,
	bookingRepo repository.BookingRepository,
	dbManager repository.DBManager,
	logger zerolog.Logger,
) PricingService {
	return &PricingServiceImpl{
		couponRepo:  couponRepo,
		bookingRepo: bookingRepo,
		dbManager:   dbManager,
		logger:      logger,
	}
}

// Quote validates a coupon and computes the discount. The checks run in a
// fixed order, each failing fast with its own error kind: existence and
// status, validity window, host scope, global cap, minimum order, per-user
// cap.
func (s *PricingServiceImpl) Quote(ctx context.Context, code string, baseTotal, userID, hostID int64) (*model.Quote, error) {
	coupon, err := s.couponRepo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	if coupon.Status != model.CouponActive {
		return nil, model.ErrCouponInactive
	}

	now := time.Now()
	if now.Before(coupon.StartDate) || now.After(coupon.EndDate.Add(24*time.Hour)) {
		return nil, model.ErrCouponExpired
	}

	if coupon.AppliesTo == model.ScopeHost {
		if coupon.HostID == nil || hostID == 0 || *coupon.HostID != hostID {
			return nil, model.ErrCouponScope
		}
	}

	if coupon.MaxUsageTotal != nil && coupon.UsedCount >= *coupon.MaxUsageTotal {
		return nil, model.ErrCouponUsageExceeded
	}

	if coupon.MinOrder != nil && baseTotal < *coupon.MinOrder {
		return nil, fmt.Errorf("%w: minimum order %d", model.ErrCouponMinOrder, *coupon.MinOrder)
	}

	if coupon.MaxUsagePerUser != nil {
		used, err := s.bookingRepo.CountPaidByCoupon(ctx, userID, code)
		if err != nil {
			return nil, fmt.Errorf("count coupon usage: %w", err)
		}
		if used >= *coupon.MaxUsagePerUser {
			return nil, model.ErrCouponUsageExceeded
		}
	}

	discount := computeDiscount(coupon, baseTotal)

	s.logger.Debug().
		Str("code", code).
		Int64("base_total", baseTotal).
		Int64("discount", discount).
		Msg("coupon quote computed")

	return &model.Quote{
		DiscountAmount: discount,
		FinalPrice:     baseTotal - discount,
		Coupon:         coupon,
	}, nil
}

// computeDiscount applies the discount rule: percent discounts clamp to
// max_discount when set, fixed discounts clamp to the base total so the
// final price never goes negative.
func computeDiscount(coupon *model.Coupon, baseTotal int64) int64 {
	var discount int64
	switch coupon.DiscountType {
	case model.DiscountPercent:
		discount = decimal.NewFromInt(baseTotal).
			Mul(decimal.NewFromInt(coupon.DiscountValue)).
			Div(decimal.NewFromInt(100)).
			Round(0).IntPart()
		if coupon.MaxDiscount != nil && discount > *coupon.MaxDiscount {
			discount = *coupon.MaxDiscount
		}
	case model.DiscountFixed:
		discount = coupon.DiscountValue
	}
	if discount > baseTotal {
		discount = baseTotal
	}
	return discount
}

func (s *PricingServiceImpl) CreateCoupon(ctx context.Context, req *model.CreateCouponRequest, actor model.Actor, actorID int64) (*model.Coupon, error) {
	startDate, err := time.Parse("2006-01-02", req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad start date", model.ErrInvalidDateRange)
	}
	endDate, err := time.Parse("2006-01-02", req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: bad end date", model.ErrInvalidDateRange)
	}
	if !endDate.After(startDate) {
		return nil, fmt.Errorf("%w: end date must follow start date", model.ErrInvalidDateRange)
	}

	coupon := &model.Coupon{
		Code:            req.Code,
		Status:          model.CouponActive,
		DiscountType:    model.DiscountType(req.DiscountType),
		DiscountValue:   req.DiscountValue,
		MaxDiscount:     req.MaxDiscount,
		MinOrder:        req.MinOrder,
		MaxUsageTotal:   req.MaxUsageTotal,
		MaxUsagePerUser: req.MaxUsagePerUser,
		AppliesTo:       model.CouponScope(req.AppliesTo),
		StartDate:       startDate,
		EndDate:         endDate,
	}

	switch coupon.AppliesTo {
	case model.ScopeHost:
		// Host-scoped coupons are owned by the host that creates them.
		if actor != model.ActorHost && actor != model.ActorSystem {
			return nil, fmt.Errorf("%w: only hosts create host-scoped coupons", model.ErrUnauthorized)
		}
		coupon.HostID = &actorID
	case model.ScopeAll:
		if actor != model.ActorSystem {
			return nil, fmt.Errorf("%w: only the platform creates global coupons", model.ErrUnauthorized)
		}
	}

	if coupon.DiscountType == model.DiscountPercent && coupon.DiscountValue > 100 {
		return nil, fmt.Errorf("%w: percent discount above 100", model.ErrInvalidAmount)
	}

	if err := s.couponRepo.InsertCoupon(ctx, coupon); err != nil {
		return nil, err
	}

	s.logger.Info().
		Str("code", coupon.Code).
		Str("applies_to", string(coupon.AppliesTo)).
		Msg("coupon created")
	return coupon, nil
}

func (s *PricingServiceImpl) IncrementCouponUsage(ctx context.Context, code string) (bool, error) {
	var incremented bool
	err := s.dbManager.WithTransaction(ctx, func(tx pgx.Tx) error {
		var err error
		incremented, err = s.couponRepo.IncrementUsageIfBelowCap(ctx, code, tx)
		return err
	})
	if err != nil {
		return false, err
	}
	return incremented, nil
}
