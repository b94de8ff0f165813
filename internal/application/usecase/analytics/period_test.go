package analytics

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod(t *testing.T) {
	now := time.Date(2024, time.February, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name          string
		key           PeriodKey
		expectedStart time.Time
	}{
		{
			name:          "current month",
			key:           PeriodCurrent,
			expectedStart: date(2024, time.February, 1),
		},
		{
			name:          "last3 rolls back across year boundary",
			key:           PeriodLast3,
			expectedStart: date(2023, time.November, 1),
		},
		{
			name:          "last6 rolls back across year boundary",
			key:           PeriodLast6,
			expectedStart: date(2023, time.August, 1),
		},
		{
			name:          "year starts on January 1st",
			key:           PeriodYear,
			expectedStart: date(2024, time.January, 1),
		},
		{
			name:          "unknown key falls back to current month",
			key:           PeriodKey("quarter"),
			expectedStart: date(2024, time.February, 1),
		},
		{
			name:          "empty key falls back to current month",
			key:           PeriodKey(""),
			expectedStart: date(2024, time.February, 1),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePeriod(tt.key, now)
			if !got.Start.Equal(tt.expectedStart) {
				t.Errorf("start = %v, want %v", got.Start, tt.expectedStart)
			}
			if !got.End.Equal(now) {
				t.Errorf("end = %v, want now (%v)", got.End, now)
			}
		})
	}
}

func TestDateRange_Days(t *testing.T) {
	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "whole days",
			start:    date(2024, time.March, 1),
			end:      date(2024, time.March, 11),
			expected: 10,
		},
		{
			name:     "partial day rounds up",
			start:    date(2024, time.March, 1),
			end:      time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC),
			expected: 11,
		},
		{
			name:     "zero range",
			start:    date(2024, time.March, 1),
			end:      date(2024, time.March, 1),
			expected: 0,
		},
		{
			name:     "inverted range yields zero",
			start:    date(2024, time.March, 10),
			end:      date(2024, time.March, 1),
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := (DateRange{Start: tt.start, End: tt.end}).Days(); got != tt.expected {
				t.Errorf("Days() = %d, want %d", got, tt.expected)
			}
		})
	}
}
