package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
	repo "github.com/kashvi-creations/storefront-api/internal/domain/repository"
	"github.com/kashvi-creations/storefront-api/pkg/helpers"
)

var (
	ErrCodeMismatch    = errors.New("invalid one-time code")
	ErrCodeExpired     = errors.New("one-time code expired")
	ErrCodeNotVerified = errors.New("one-time code not verified")
	ErrSMSDelivery     = errors.New("sms delivery failed")
)

// ResetCodeStore holds at most one live code per phone; saving replaces
// any prior record (upsert semantics).
type ResetCodeStore interface {
	Save(ctx context.Context, rec *entity.ResetCode) error
	// Get returns nil, nil when no record exists for the phone.
	Get(ctx context.Context, phone string) (*entity.ResetCode, error)
	Delete(ctx context.Context, phone string) error
}

// OTPSender delivers a one-time code through the SMS relay.
type OTPSender interface {
	SendOTP(ctx context.Context, phone, code string) error
}

// ResetService drives the phone-based password reset:
// NONE -> ISSUED -> VERIFIED -> consumed, with EXPIRED folded in from
// the wall clock. Transitions are validated here, not in the store.
type ResetService struct {
	Users  repo.UserRepository
	Codes  ResetCodeStore
	SMS    OTPSender
	TTL    time.Duration
	Logger *logrus.Logger

	now func() time.Time
}

func NewResetService(users repo.UserRepository, codes ResetCodeStore, sms OTPSender, ttl time.Duration, logger *logrus.Logger) *ResetService {
	return &ResetService{Users: users, Codes: codes, SMS: sms, TTL: ttl, Logger: logger, now: time.Now}
}

// RequestCode issues a fresh code for the phone, replacing any prior
// one, and dispatches it. A delivery failure is reported to the caller
// but the stored code stays valid (no rollback).
func (s *ResetService) RequestCode(ctx context.Context, phone string) error {
	code, err := helpers.GenOTPCode()
	if err != nil {
		return err
	}
	rec := &entity.ResetCode{
		Phone:     phone,
		Code:      code,
		State:     entity.ResetCodeIssued,
		ExpiresAt: s.now().Add(s.TTL),
	}
	if err := s.Codes.Save(ctx, rec); err != nil {
		return err
	}
	if err := s.SMS.SendOTP(ctx, phone, code); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("phone", phone).Warn("otp dispatch failed")
		}
		return fmt.Errorf("%w: %v", ErrSMSDelivery, err)
	}
	return nil
}

// VerifyCode checks the entered value against the live record and moves
// it to VERIFIED. A wrong value or a missing record is a mismatch; a
// matching value past its window is expired.
func (s *ResetService) VerifyCode(ctx context.Context, phone, entered string) error {
	rec, err := s.Codes.Get(ctx, phone)
	if err != nil {
		return err
	}
	if rec == nil || rec.Code != entered {
		return ErrCodeMismatch
	}
	if !rec.CanVerify(s.now()) {
		return ErrCodeExpired
	}
	if rec.State != entity.ResetCodeVerified {
		rec.State = entity.ResetCodeVerified
		if err := s.Codes.Save(ctx, rec); err != nil {
			return err
		}
	}
	return nil
}

// ResetPassword overwrites the password of the user owning the phone.
// It requires a VERIFIED record and consumes it, so a verified code
// authorizes exactly one reset.
func (s *ResetService) ResetPassword(ctx context.Context, phone, newPassword string) error {
	rec, err := s.Codes.Get(ctx, phone)
	if err != nil {
		return err
	}
	if rec == nil {
		return ErrCodeNotVerified
	}
	if !rec.CanConsume(s.now()) {
		if rec.EffectiveState(s.now()) == entity.ResetCodeExpired {
			return ErrCodeExpired
		}
		return ErrCodeNotVerified
	}
	if !helpers.PasswordStrongEnough(newPassword) {
		return ErrWeakPassword
	}
	u, err := s.Users.GetByPhone(phone)
	if err != nil || u == nil {
		return ErrUserNotFound
	}
	hash, err := helpers.HashPassword(newPassword)
	if err != nil {
		return err
	}
	if err := s.Users.UpdatePassword(u.ID, hash); err != nil {
		return err
	}
	if err := s.Codes.Delete(ctx, phone); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("phone", phone).Warn("reset code cleanup failed")
	}
	return nil
}
