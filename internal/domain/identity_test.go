package domain

import "testing"

func TestNormalizeIdentity(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"trims whitespace", "  Tomato  ", "tomato"},
		{"folds case", "TOMATO Paste", "tomato paste"},
		{"collapses internal whitespace", "fresh\t milk   1L", "fresh milk 1l"},
		{"blank", "   ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeIdentity(tt.raw); got != tt.want {
				t.Errorf("NormalizeIdentity(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdentity_Idempotent(t *testing.T) {
	inputs := []string{"  Whole Milk ", "TOMATO", "olive  oil 5L", ""}
	for _, raw := range inputs {
		once := NormalizeIdentity(raw)
		if twice := NormalizeIdentity(once); twice != once {
			t.Errorf("NormalizeIdentity not idempotent for %q: %q != %q", raw, once, twice)
		}
	}
}

func TestPeriodDays(t *testing.T) {
	if got := PeriodWeekly.Days(); got != 7 {
		t.Errorf("weekly period = %v days, want 7", got)
	}
	if got := PeriodMonthly.Days(); got != 30 {
		t.Errorf("monthly period = %v days, want 30", got)
	}
}
