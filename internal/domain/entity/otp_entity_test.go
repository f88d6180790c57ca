package entity_test

import (
	"testing"
	"time"

	"github.com/kashvi-creations/storefront-api/internal/domain/entity"
)

func TestResetCodeLifecycle(t *testing.T) {
	issued := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)
	expires := issued.Add(5 * time.Minute)

	tests := []struct {
		name       string
		state      entity.ResetCodeState
		at         time.Time
		wantState  entity.ResetCodeState
		canVerify  bool
		canConsume bool
	}{
		{"issued within window", entity.ResetCodeIssued, issued.Add(time.Minute), entity.ResetCodeIssued, true, false},
		{"issued at the boundary", entity.ResetCodeIssued, expires, entity.ResetCodeIssued, true, false},
		{"issued past window", entity.ResetCodeIssued, issued.Add(6 * time.Minute), entity.ResetCodeExpired, false, false},
		{"verified within window", entity.ResetCodeVerified, issued.Add(2 * time.Minute), entity.ResetCodeVerified, true, true},
		{"verified past window", entity.ResetCodeVerified, issued.Add(10 * time.Minute), entity.ResetCodeExpired, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &entity.ResetCode{Phone: "9876543210", Code: "123456", State: tt.state, ExpiresAt: expires}
			if got := rec.EffectiveState(tt.at); got != tt.wantState {
				t.Errorf("EffectiveState = %s, want %s", got, tt.wantState)
			}
			if got := rec.CanVerify(tt.at); got != tt.canVerify {
				t.Errorf("CanVerify = %v, want %v", got, tt.canVerify)
			}
			if got := rec.CanConsume(tt.at); got != tt.canConsume {
				t.Errorf("CanConsume = %v, want %v", got, tt.canConsume)
			}
		})
	}
}
