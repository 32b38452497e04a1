// services/evaluator.go
package services

import (
	"memorykeeper-backend/models"
	"memorykeeper-backend/utils"
)

// FiringDecision is the outcome of evaluating one reminder for one day.
type FiringDecision int

const (
	FireNone FiringDecision = iota
	FireOnDate
	FireAdvanceNotice
)

func (d FiringDecision) String() string {
	switch d {
	case FireOnDate:
		return "on_date"
	case FireAdvanceNotice:
		return "advance_notice"
	default:
		return "none"
	}
}

// EvaluateReminder decides whether a reminder fires on the given day. It is
// a pure function: same inputs, same decision, no clock reads.
//
// Recurring reminders re-anchor to today's year, so only month and day of
// the anchor matter; one-off reminders must match the full date. A reminder
// with AdvanceNoticeDays > 0 additionally fires that many days before the
// effective occurrence.
func EvaluateReminder(r models.Reminder, today utils.CalendarDate) (FiringDecision, error) {
	// The scheduler filters inactive reminders, but never fire on one
	// that slips through.
	if !r.IsActive {
		return FireNone, nil
	}

	anchor, err := utils.ParseCalendarDate(r.AnchorDate)
	if err != nil {
		return FireNone, err
	}

	effective := anchor
	if r.IsRecurring {
		effective = occurrenceInYear(anchor, today.Year)
	}

	if today.SameDay(effective) {
		return FireOnDate, nil
	}
	if r.AdvanceNoticeDays > 0 {
		if today.SameDay(effective.ShiftDays(-r.AdvanceNoticeDays)) {
			return FireAdvanceNotice, nil
		}
		// A recurring date early in January has its advance window in the
		// previous December, so the next year's occurrence must be checked
		// too or the notice could never fire.
		if r.IsRecurring {
			next := occurrenceInYear(anchor, today.Year+1)
			if today.SameDay(next.ShiftDays(-r.AdvanceNoticeDays)) {
				return FireAdvanceNotice, nil
			}
		}
	}
	return FireNone, nil
}

// occurrenceInYear maps a recurring anchor onto a concrete date in the
// given year. A Feb 29 anchor falls on Feb 28 in non-leap years; without
// the clamp, time-package normalization would push it to Mar 1.
func occurrenceInYear(anchor utils.CalendarDate, year int) utils.CalendarDate {
	day := anchor.Day
	if anchor.Month == 2 && day == 29 && !utils.IsLeapYear(year) {
		day = 28
	}
	return utils.CalendarDate{Year: year, Month: anchor.Month, Day: day}
}
