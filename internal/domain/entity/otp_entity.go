package entity

import "time"

// ResetCodeState tags the lifecycle of a phone reset code.
// NONE is represented by the absence of a record.
type ResetCodeState string

const (
	ResetCodeIssued   ResetCodeState = "ISSUED"
	ResetCodeVerified ResetCodeState = "VERIFIED"
	ResetCodeExpired  ResetCodeState = "EXPIRED"
)

// ResetCode is the single live one-time code for a phone number.
// Issuing a new code replaces any prior record for the same phone.
type ResetCode struct {
	Phone     string         `json:"phone"`
	Code      string         `json:"code"`
	State     ResetCodeState `json:"state"`
	ExpiresAt time.Time      `json:"expires_at"`
}

// EffectiveState folds wall-clock expiry into the stored tag.
func (r *ResetCode) EffectiveState(now time.Time) ResetCodeState {
	if now.After(r.ExpiresAt) {
		return ResetCodeExpired
	}
	return r.State
}

// CanVerify reports whether a verify attempt is allowed at now.
// Re-verifying an already verified code within the window is permitted.
func (r *ResetCode) CanVerify(now time.Time) bool {
	s := r.EffectiveState(now)
	return s == ResetCodeIssued || s == ResetCodeVerified
}

// CanConsume reports whether the code authorizes a password reset at now.
func (r *ResetCode) CanConsume(now time.Time) bool {
	return r.EffectiveState(now) == ResetCodeVerified
}
