package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseReminderTime(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
		err      error
	}{
		{
			name:     "clock time still ahead today",
			input:    "18:45",
			expected: time.Date(2024, 6, 15, 18, 45, 0, 0, time.UTC),
		},
		{
			name:     "clock time already past rolls to tomorrow",
			input:    "09:00",
			expected: time.Date(2024, 6, 16, 9, 0, 0, 0, time.UTC),
		},
		{
			name:     "exact current minute rolls to tomorrow",
			input:    "10:30",
			expected: time.Date(2024, 6, 16, 10, 30, 0, 0, time.UTC),
		},
		{
			name:     "relative hours",
			input:    "in 2 hours",
			expected: now.Add(2 * time.Hour),
		},
		{
			name:     "relative single hour",
			input:    "in 1 hour",
			expected: now.Add(time.Hour),
		},
		{
			name:     "relative minutes",
			input:    "in 45 minutes",
			expected: now.Add(45 * time.Minute),
		},
		{
			name:     "whitespace and case tolerated",
			input:    "  In 2 Hours ",
			expected: now.Add(2 * time.Hour),
		},
		{
			name:  "hour out of range",
			input: "25:00",
			err:   ErrInvalidTime,
		},
		{
			name:  "minute out of range",
			input: "10:60",
			err:   ErrInvalidTime,
		},
		{
			name:  "non-numeric hour",
			input: "ab:30",
			err:   ErrInvalidTime,
		},
		{
			name:  "non-numeric relative count",
			input: "in two hours",
			err:   ErrInvalidTime,
		},
		{
			name:  "unknown relative unit",
			input: "in 2 days",
			err:   ErrInvalidTime,
		},
		{
			name:  "negative relative count",
			input: "in -1 hours",
			err:   ErrInvalidTime,
		},
		{
			name:  "malformed relative phrase",
			input: "in hours",
			err:   ErrInvalidTime,
		},
		{
			name:  "empty input",
			input: "",
			err:   ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReminderTime(tt.input, now)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestParseReminderDate(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	today := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    string
		expected time.Time
		err      error
	}{
		{
			name:     "today",
			input:    "today",
			expected: today,
		},
		{
			name:     "tomorrow",
			input:    "Tomorrow",
			expected: today.AddDate(0, 0, 1),
		},
		{
			name:     "literal future date",
			input:    "20.06.2024",
			expected: time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "literal today",
			input:    "15.06.2024",
			expected: today,
		},
		{
			name:  "literal past date",
			input: "01.06.2024",
			err:   ErrPastTime,
		},
		{
			name:  "malformed date",
			input: "2024-06-20",
			err:   ErrInvalidTime,
		},
		{
			name:  "garbage",
			input: "someday",
			err:   ErrInvalidTime,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReminderDate(tt.input, now)

			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCombineDateTime(t *testing.T) {
	date := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	got, err := CombineDateTime(date, "09:15")
	assert.NoError(t, err)
	assert.Equal(t, time.Date(2024, 6, 20, 9, 15, 0, 0, time.UTC), got)

	_, err = CombineDateTime(date, "9am")
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = CombineDateTime(date, "24:00")
	assert.ErrorIs(t, err, ErrInvalidTime)
}
