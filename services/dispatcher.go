// services/dispatcher.go
package services

import (
	"fmt"
	"html"
	"strings"
	"time"

	"memorykeeper-backend/models"
	"memorykeeper-backend/utils"
)

// Mailer is the outbound transport. Implementations must be safe for
// concurrent use; the scheduler dispatches reminders in parallel.
type Mailer interface {
	Send(to, subject, htmlBody string) error
	// IsConfigured reports whether the transport has credentials. When it
	// does not, dispatch runs in simulated mode instead of erroring.
	IsConfigured() bool
}

// RecipientsFor resolves the addresses a user's notifications go to:
// the explicit notification list when set, otherwise the account email.
// An empty result means dispatch is a no-op for this user.
func RecipientsFor(user models.User) []string {
	if len(user.NotificationEmails) > 0 {
		return user.NotificationEmails
	}
	if user.Email != "" {
		return []string{user.Email}
	}
	return nil
}

// RenderNotification builds the subject and HTML body for a firing.
// Rendering is deterministic: everything comes from the reminder, the
// decision and today's date.
func RenderNotification(r models.Reminder, decision FiringDecision, today utils.CalendarDate) (string, string) {
	var subject string
	switch r.Type {
	case models.ReminderTypeBirthday:
		subject = "Birthday reminder: " + r.Title
	case models.ReminderTypeAnniversary:
		subject = "Anniversary reminder: " + r.Title
	default:
		subject = "Reminder: " + r.Title
	}

	if decision == FireAdvanceNotice {
		subject += fmt.Sprintf(" (in %d days)", r.AdvanceNoticeDays)
	} else {
		subject += " is today"
	}

	// All user-entered fields are escaped before they reach the HTML body
	var b strings.Builder
	b.WriteString("<h2>" + html.EscapeString(r.Title) + "</h2>")
	if decision == FireAdvanceNotice {
		fmt.Fprintf(&b, "<p>Coming up in %d days.</p>", r.AdvanceNoticeDays)
	} else {
		b.WriteString("<p>It's today!</p>")
	}

	if r.Person != nil {
		b.WriteString("<p>" + html.EscapeString(r.Person.Name))
		if r.Person.Relationship != "" {
			b.WriteString(" (" + html.EscapeString(r.Person.Relationship) + ")")
		}
		b.WriteString("</p>")
		if age, ok := ageInYear(r, today.Year); ok {
			fmt.Fprintf(&b, "<p>Turning %d this year.</p>", age)
		}
		if r.Person.Notes != "" {
			b.WriteString("<p>" + html.EscapeString(r.Person.Notes) + "</p>")
		}
	}

	if r.Description != "" {
		b.WriteString("<p>" + html.EscapeString(r.Description) + "</p>")
	}

	return subject, b.String()
}

// ageInYear computes the age a recurring birthday reminder's anchor year
// implies. The anchor year is the birth year when it lies in the past.
func ageInYear(r models.Reminder, year int) (int, bool) {
	if r.Type != models.ReminderTypeBirthday || !r.IsRecurring {
		return 0, false
	}
	anchor, err := utils.ParseCalendarDate(r.AnchorDate)
	if err != nil || anchor.Year >= year {
		return 0, false
	}
	return year - anchor.Year, true
}

// Dispatch fans one firing out to every recipient, one send attempt and
// one audit entry per address. A failed recipient never stops the rest;
// an unconfigured mailer yields simulated entries without touching the
// transport. The caller persists the returned entries.
func Dispatch(r models.Reminder, decision FiringDecision, user models.User, mailer Mailer, today utils.CalendarDate) []models.NotificationLog {
	recipients := RecipientsFor(user)
	if len(recipients) == 0 {
		return nil
	}

	subject, body := RenderNotification(r, decision, today)
	simulated := !mailer.IsConfigured()

	entries := make([]models.NotificationLog, 0, len(recipients))
	for _, to := range recipients {
		entry := models.NotificationLog{
			ReminderID: r.ID,
			UserID:     user.ID,
			Recipient:  to,
			Subject:    subject,
			Body:       body,
			SentAt:     time.Now(),
		}

		if simulated {
			entry.Status = models.NotificationStatusSimulated
		} else if err := mailer.Send(to, subject, body); err != nil {
			entry.Status = models.NotificationStatusFailed
			entry.ErrorMessage = err.Error()
		} else {
			entry.Status = models.NotificationStatusSent
		}

		entries = append(entries, entry)
	}

	return entries
}
