package hours

import (
	"testing"
	"time"
)

func TestFromIso(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Time
	}{
		{
			name:     "utc",
			input:    "2025-01-01T15:00:00Z",
			expected: time.Date(2025, time.January, 1, 15, 0, 0, 0, time.UTC),
		},
		{
			name:     "offset with milliseconds",
			input:    "2025-01-01T00:00:00.000+01:00",
			expected: time.Date(2024, time.December, 31, 23, 0, 0, 0, time.UTC),
		},
		{
			name:     "invalid",
			input:    "not a valid iso date",
			expected: time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromIso(tt.input)
			if !got.Equal(tt.expected) {
				t.Errorf("FromIso(%q) expected %v, got %v", tt.input, tt.expected, got)
			}
		})
	}
}

func TestSetTimezone(t *testing.T) {
	defer func() { displayLocation = time.Local }()

	if err := SetTimezone("Europe/Stockholm"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	winter := time.Date(2025, time.January, 1, 12, 0, 0, 0, time.UTC)
	if got := Clock(winter); got != "13:00" {
		t.Errorf("Clock() on winter date expected 13:00, got %s", got)
	}

	summer := time.Date(2025, time.July, 1, 12, 0, 0, 0, time.UTC)
	if got := Clock(summer); got != "14:00" {
		t.Errorf("Clock() on summer date expected 14:00, got %s", got)
	}

	if err := SetTimezone("Nowhere/Atlantis"); err == nil {
		t.Errorf("expected error for unknown timezone")
	}
}

func TestClockZero(t *testing.T) {
	if got := Clock(time.Time{}); got != "--:--" {
		t.Errorf("Clock() with zero time expected --:--, got %s", got)
	}
}
