// services/reminder_service.go
package services

import (
	"errors"
	"fmt"
	"log"
	"os"
	"sync"
	"sync/atomic"

	"memorykeeper-backend/models"
	"memorykeeper-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// ErrTickInProgress is returned when a tick is requested while the previous
// one has not finished. Overlapping ticks would double-send for the day.
var ErrTickInProgress = errors.New("reminder tick already in progress")

// ReminderStore is the narrow slice of storage the scheduler needs. The
// scheduler issues no queries of its own.
type ReminderStore interface {
	ListActiveReminders() ([]models.Reminder, error)
	GetUser(id uuid.UUID) (*models.User, error)
	AppendNotificationLog(entry *models.NotificationLog) error
}

// TickFailure records one isolated per-reminder problem inside a tick.
type TickFailure struct {
	ReminderID uuid.UUID `json:"reminderId"`
	Reason     string    `json:"reason"`
}

// TickReport summarizes one daily tick.
type TickReport struct {
	Date               string        `json:"date"`
	Examined           int           `json:"examined"`
	FiredOnDate        int           `json:"firedOnDate"`
	FiredAdvanceNotice int           `json:"firedAdvanceNotice"`
	RecipientsNotified int           `json:"recipientsNotified"`
	Skipped            int           `json:"skipped"`
	Failures           []TickFailure `json:"failures"`
}

type ReminderService struct {
	store   ReminderStore
	mailer  Mailer
	ticking atomic.Bool
}

// NewReminderService wires the scheduler to the database and the SMTP
// transport from the environment.
func NewReminderService(db *gorm.DB) *ReminderService {
	return &ReminderService{
		store:  &gormStore{db: db},
		mailer: NewSMTPMailerFromEnv(),
	}
}

// NewReminderServiceWith accepts explicit collaborators.
func NewReminderServiceWith(store ReminderStore, mailer Mailer) *ReminderService {
	return &ReminderService{store: store, mailer: mailer}
}

// StartScheduler registers the daily tick. The schedule comes from
// REMINDER_CRON and defaults to 9 AM local time.
func (s *ReminderService) StartScheduler() {
	spec := os.Getenv("REMINDER_CRON")
	if spec == "" {
		spec = "0 9 * * *"
	}

	c := cron.New()
	if _, err := c.AddFunc(spec, func() {
		if _, err := s.RunDailyTick(utils.Today()); err != nil {
			log.Printf("Daily reminder tick failed: %v", err)
		}
	}); err != nil {
		log.Printf("Invalid REMINDER_CRON %q: %v", spec, err)
		return
	}

	c.Start()
	log.Println("Reminder scheduler started")
}

// RunDailyTick evaluates every active reminder for the given day and
// dispatches the due ones. The manual trigger endpoint calls this with the
// same arguments as the cron job, so both paths behave identically. Only a
// failure to list reminders aborts the tick; everything per-reminder is
// isolated and reported.
func (s *ReminderService) RunDailyTick(today utils.CalendarDate) (*TickReport, error) {
	if !s.ticking.CompareAndSwap(false, true) {
		return nil, ErrTickInProgress
	}
	defer s.ticking.Store(false)

	log.Printf("Starting reminder tick for %s", today)

	reminders, err := s.store.ListActiveReminders()
	if err != nil {
		return nil, fmt.Errorf("list active reminders: %w", err)
	}

	report := &TickReport{Date: today.String(), Examined: len(reminders)}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)
	for _, reminder := range reminders {
		wg.Add(1)
		go func(r models.Reminder) {
			defer wg.Done()
			s.processReminder(r, today, report, &mu)
		}(reminder)
	}
	wg.Wait()

	log.Printf("Reminder tick for %s done: %d examined, %d on-date, %d advance, %d recipients, %d failures",
		today, report.Examined, report.FiredOnDate, report.FiredAdvanceNotice,
		report.RecipientsNotified, len(report.Failures))

	return report, nil
}

// processReminder handles one reminder within a tick. All audit entries for
// the firing are persisted before the report is updated, so a completed
// tick never under-reports what was written.
func (s *ReminderService) processReminder(r models.Reminder, today utils.CalendarDate, report *TickReport, mu *sync.Mutex) {
	fail := func(reason string) {
		mu.Lock()
		report.Failures = append(report.Failures, TickFailure{ReminderID: r.ID, Reason: reason})
		mu.Unlock()
	}

	// Storage filters on is_active, but filter again rather than trust it
	if !r.IsActive {
		return
	}

	decision, err := EvaluateReminder(r, today)
	if err != nil {
		log.Printf("Reminder %s: skipped, bad anchor date %q: %v", r.ID, r.AnchorDate, err)
		fail("invalid anchor date: " + err.Error())
		return
	}
	if decision == FireNone {
		return
	}

	user, err := s.store.GetUser(r.UserID)
	if err != nil {
		log.Printf("Reminder %s: owner lookup failed: %v", r.ID, err)
		fail("owner lookup failed: " + err.Error())
		return
	}
	if user == nil {
		log.Printf("Reminder %s: owner %s not found, skipping", r.ID, r.UserID)
		fail("owner not found")
		return
	}

	entries := Dispatch(r, decision, *user, s.mailer, today)
	if len(entries) == 0 {
		log.Printf("Reminder %s: owner %s has no recipients, skipping", r.ID, r.UserID)
		mu.Lock()
		report.Skipped++
		mu.Unlock()
		return
	}

	notified := 0
	for i := range entries {
		if err := s.store.AppendNotificationLog(&entries[i]); err != nil {
			log.Printf("Reminder %s: failed to persist audit entry for %s: %v", r.ID, entries[i].Recipient, err)
			fail("audit write failed: " + err.Error())
			continue
		}
		// A failed send is audited but its recipient was not notified
		if entries[i].Status != models.NotificationStatusFailed {
			notified++
		}
	}

	mu.Lock()
	switch decision {
	case FireOnDate:
		report.FiredOnDate++
	case FireAdvanceNotice:
		report.FiredAdvanceNotice++
	}
	report.RecipientsNotified += notified
	mu.Unlock()
}

// gormStore adapts the GORM connection to the ReminderStore interface.
type gormStore struct {
	db *gorm.DB
}

func (g *gormStore) ListActiveReminders() ([]models.Reminder, error) {
	var reminders []models.Reminder
	err := g.db.Preload("Person").Where("is_active = ?", true).Find(&reminders).Error
	return reminders, err
}

func (g *gormStore) GetUser(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := g.db.First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (g *gormStore) AppendNotificationLog(entry *models.NotificationLog) error {
	return g.db.Create(entry).Error
}
