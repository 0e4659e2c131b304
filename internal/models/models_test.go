package models

import (
	"errors"
	"testing"
	"time"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestErrors_Unique(t *testing.T) {
	if errors.Is(ErrCardClosed, ErrCardPostponed) {
		t.Error("ErrCardClosed should not equal ErrCardPostponed")
	}
}

// ============================================================================
// Lifecycle Tests
// ============================================================================

func TestCard_Lifecycle(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		card     Card
		expected Lifecycle
	}{
		{"open card", Card{}, LifecycleOpen},
		{"closed card", Card{ClosedAt: &now}, LifecycleClosed},
		{"postponed card", Card{PostponedAt: &now}, LifecyclePostponed},
		{"closed wins over postponed", Card{ClosedAt: &now, PostponedAt: &now}, LifecycleClosed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.card.Lifecycle(); got != tt.expected {
				t.Errorf("Expected lifecycle %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestCard_GetIDReturnsNumber(t *testing.T) {
	c := Card{ID: 12, Number: 4021}
	if c.GetID() != 4021 {
		t.Errorf("Expected GetID to return card number 4021, got %d", c.GetID())
	}
}

func TestDefaultTerminalStatuses(t *testing.T) {
	expected := map[string]bool{StatusDone: true, StatusNotNow: true, StatusMaybe: true}
	if len(DefaultTerminalStatuses) != len(expected) {
		t.Fatalf("Expected %d terminal statuses, got %d", len(expected), len(DefaultTerminalStatuses))
	}
	for _, s := range DefaultTerminalStatuses {
		if !expected[s] {
			t.Errorf("Unexpected terminal status %q", s)
		}
	}
}
