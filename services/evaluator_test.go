package services

import (
	"testing"

	"memorykeeper-backend/models"
	"memorykeeper-backend/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func activeReminder(anchor string, recurring bool, advance int) models.Reminder {
	return models.Reminder{
		Type:              models.ReminderTypeBirthday,
		Title:             "test",
		AnchorDate:        anchor,
		IsRecurring:       recurring,
		AdvanceNoticeDays: advance,
		IsActive:          true,
	}
}

// TestEvaluateReminder covers one-off and recurring firing, advance notice,
// and the year-boundary and leap-day edge cases.
func TestEvaluateReminder(t *testing.T) {
	tests := []struct {
		name     string
		reminder models.Reminder
		today    utils.CalendarDate
		expected FiringDecision
	}{
		{
			name:     "One-off fires on exact date",
			reminder: activeReminder("1990-07-13", false, 0),
			today:    utils.CalendarDate{Year: 1990, Month: 7, Day: 13},
			expected: FireOnDate,
		},
		{
			name:     "One-off does not fire on same month-day other year",
			reminder: activeReminder("1990-07-13", false, 0),
			today:    utils.CalendarDate{Year: 2025, Month: 7, Day: 13},
			expected: FireNone,
		},
		{
			name:     "One-off does not fire the day before",
			reminder: activeReminder("2025-07-13", false, 0),
			today:    utils.CalendarDate{Year: 2025, Month: 7, Day: 12},
			expected: FireNone,
		},
		{
			name:     "Recurring fires on month-day regardless of year",
			reminder: activeReminder("1990-07-13", true, 0),
			today:    utils.CalendarDate{Year: 2025, Month: 7, Day: 13},
			expected: FireOnDate,
		},
		{
			name:     "Recurring does not fire on wrong day",
			reminder: activeReminder("1990-07-13", true, 0),
			today:    utils.CalendarDate{Year: 2025, Month: 7, Day: 12},
			expected: FireNone,
		},
		{
			name:     "Birthday advance notice three days before",
			reminder: activeReminder("1990-03-10", true, 3),
			today:    utils.CalendarDate{Year: 2025, Month: 3, Day: 7},
			expected: FireAdvanceNotice,
		},
		{
			name:     "Birthday with advance notice still fires on the day",
			reminder: activeReminder("1990-03-10", true, 3),
			today:    utils.CalendarDate{Year: 2025, Month: 3, Day: 10},
			expected: FireOnDate,
		},
		{
			name:     "No firing between advance notice and the day",
			reminder: activeReminder("1990-03-10", true, 3),
			today:    utils.CalendarDate{Year: 2025, Month: 3, Day: 8},
			expected: FireNone,
		},
		{
			name:     "Advance notice zero means no advance firing",
			reminder: activeReminder("1990-03-10", true, 0),
			today:    utils.CalendarDate{Year: 2025, Month: 3, Day: 9},
			expected: FireNone,
		},
		{
			name:     "Advance notice crosses year boundary",
			reminder: activeReminder("1990-01-02", true, 5),
			today:    utils.CalendarDate{Year: 2024, Month: 12, Day: 28},
			expected: FireAdvanceNotice,
		},
		{
			name:     "New Year's Day anchor notified on Dec 31",
			reminder: activeReminder("1990-01-01", true, 1),
			today:    utils.CalendarDate{Year: 2024, Month: 12, Day: 31},
			expected: FireAdvanceNotice,
		},
		{
			name:     "No firing outside the cross-year advance window",
			reminder: activeReminder("1990-01-02", true, 5),
			today:    utils.CalendarDate{Year: 2024, Month: 12, Day: 27},
			expected: FireNone,
		},
		{
			name:     "January anchor still fires on its own day",
			reminder: activeReminder("1990-01-02", true, 5),
			today:    utils.CalendarDate{Year: 2025, Month: 1, Day: 2},
			expected: FireOnDate,
		},
		{
			name:     "One-off advance notice on exact offset",
			reminder: activeReminder("2025-08-01", false, 7),
			today:    utils.CalendarDate{Year: 2025, Month: 7, Day: 25},
			expected: FireAdvanceNotice,
		},
		{
			name:     "Leapling fires on Feb 28 in non-leap year",
			reminder: activeReminder("2000-02-29", true, 0),
			today:    utils.CalendarDate{Year: 2025, Month: 2, Day: 28},
			expected: FireOnDate,
		},
		{
			name:     "Leapling does not fire on Mar 1 in non-leap year",
			reminder: activeReminder("2000-02-29", true, 0),
			today:    utils.CalendarDate{Year: 2025, Month: 3, Day: 1},
			expected: FireNone,
		},
		{
			name:     "Leapling fires on Feb 29 in leap year",
			reminder: activeReminder("2000-02-29", true, 0),
			today:    utils.CalendarDate{Year: 2024, Month: 2, Day: 29},
			expected: FireOnDate,
		},
		{
			name:     "Leapling advance notice counts from clamped date",
			reminder: activeReminder("2000-02-29", true, 2),
			today:    utils.CalendarDate{Year: 2025, Month: 2, Day: 26},
			expected: FireAdvanceNotice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvaluateReminder(tt.reminder, tt.today)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestEvaluateReminder_Inactive(t *testing.T) {
	r := activeReminder("2025-07-13", false, 0)
	r.IsActive = false

	got, err := EvaluateReminder(r, utils.CalendarDate{Year: 2025, Month: 7, Day: 13})
	require.NoError(t, err)
	assert.Equal(t, FireNone, got, "inactive reminders never fire, even on their date")
}

func TestEvaluateReminder_InvalidAnchor(t *testing.T) {
	r := activeReminder("13/07/2025", false, 0)

	got, err := EvaluateReminder(r, utils.CalendarDate{Year: 2025, Month: 7, Day: 13})
	require.ErrorIs(t, err, utils.ErrInvalidDateFormat)
	assert.Equal(t, FireNone, got)
}

// Evaluation is pure: repeated calls with the same inputs agree.
func TestEvaluateReminder_Deterministic(t *testing.T) {
	r := activeReminder("1990-03-10", true, 3)
	today := utils.CalendarDate{Year: 2025, Month: 3, Day: 7}

	first, err1 := EvaluateReminder(r, today)
	second, err2 := EvaluateReminder(r, today)

	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, first, second)
}
