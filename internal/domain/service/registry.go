package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/contract"
	"github.com/diegoclair/slack-reminder-bot/internal/domain/entity"
	"github.com/diegoclair/slack-reminder-bot/internal/metrics"
	"go.uber.org/zap"
)

// registry owns the ordered reminder list and the user timezones.
// Every mutation runs under mu and is followed by a synchronous save, so two
// writers never interleave and the store always receives a consistent list.
type registry struct {
	mu        sync.Mutex
	store     contract.ReminderStore
	log       *zap.Logger
	reminders []*entity.Reminder
	timezones map[string]string
	dirty     bool // last save failed

	// users whose timezone was changed but not yet saved
	pendingTimezones map[string]bool
}

func newRegistry(store contract.ReminderStore, log *zap.Logger) *registry {
	return &registry{
		store:            store,
		log:              log,
		timezones:        make(map[string]string),
		pendingTimezones: make(map[string]bool),
	}
}

// Load replaces the in-memory state with the stored documents
func (r *registry) Load(ctx context.Context) error {
	reminders, err := r.store.LoadReminders(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to load reminders: %w", domain.ErrPersistence, err)
	}

	timezones, err := r.store.LoadTimezones(ctx)
	if err != nil {
		return fmt.Errorf("%w: failed to load timezones: %w", domain.ErrPersistence, err)
	}
	if timezones == nil {
		timezones = make(map[string]string)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.reminders = reminders
	r.timezones = timezones
	r.dirty = false
	r.pendingTimezones = make(map[string]bool)
	metrics.ActiveReminders.Set(float64(len(r.reminders)))

	r.log.Info("registry loaded",
		zap.Int("reminders", len(reminders)),
		zap.Int("timezones", len(timezones)))

	return nil
}

// Add appends a reminder with the next free id. Duplicates are allowed.
func (r *registry) Add(ctx context.Context, userID, channelID string, fireTime time.Time, message string, repeatInterval *int) (*entity.Reminder, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", domain.ErrParse)
	}
	if repeatInterval != nil && *repeatInterval <= 0 {
		return nil, domain.ErrInvalidInterval
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	reminder := &entity.Reminder{
		ID:        r.nextID(),
		UserID:    userID,
		ChannelID: channelID,
		FireTime:  fireTime.UTC().Truncate(time.Minute),
		Message:   message,
	}
	if repeatInterval != nil {
		reminder.RepeatInterval = entity.IntPtr(*repeatInterval)
	}

	r.reminders = append(r.reminders, reminder)

	return reminder.Clone(), r.persist(ctx)
}

// ListFor returns the user's reminders in insertion order
func (r *registry) ListFor(userID string) []*entity.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()

	var result []*entity.Reminder
	for _, reminder := range r.reminders {
		if reminder.UserID == userID {
			result = append(result, reminder.Clone())
		}
	}
	return result
}

// All returns every reminder in insertion order
func (r *registry) All() []*entity.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*entity.Reminder, 0, len(r.reminders))
	for _, reminder := range r.reminders {
		result = append(result, reminder.Clone())
	}
	return result
}

// Delete removes the reminder only when it belongs to userID
func (r *registry) Delete(ctx context.Context, userID string, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(userID, id)
	if idx < 0 {
		return domain.ErrNotFound
	}

	r.reminders = append(r.reminders[:idx], r.reminders[idx+1:]...)

	return r.persist(ctx)
}

// Clear removes all reminders of userID and returns how many were removed
func (r *registry) Clear(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.reminders[:0]
	removed := 0
	for _, reminder := range r.reminders {
		if reminder.UserID == userID {
			removed++
			continue
		}
		kept = append(kept, reminder)
	}
	r.reminders = kept

	if removed == 0 {
		return 0, nil
	}

	return removed, r.persist(ctx)
}

// Snooze moves the fire time forward, leaving the repeat interval untouched
func (r *registry) Snooze(ctx context.Context, userID string, id int64, minutes int) (*entity.Reminder, error) {
	if minutes <= 0 {
		return nil, domain.ErrInvalidInterval
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(userID, id)
	if idx < 0 {
		return nil, domain.ErrNotFound
	}

	reminder := r.reminders[idx]
	reminder.FireTime = reminder.FireTime.Add(time.Duration(minutes) * time.Minute)

	return reminder.Clone(), r.persist(ctx)
}

// SetTimezone stores an already validated zone name for the user. A zone
// that fails to save stays pending and is written by the next save.
func (r *registry) SetTimezone(ctx context.Context, userID, tz string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.timezones[userID] = tz
	r.pendingTimezones[userID] = true

	return r.persistTimezones(ctx)
}

// Timezone returns the user's zone name, UTC when unset
func (r *registry) Timezone(userID string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if tz, ok := r.timezones[userID]; ok && tz != "" {
		return tz
	}
	return domain.DefaultTimezone
}

// Due returns copies of every reminder whose fire time is at or before now
func (r *registry) Due(now time.Time) []*entity.Reminder {
	r.mu.Lock()
	defer r.mu.Unlock()

	var due []*entity.Reminder
	for _, reminder := range r.reminders {
		if !reminder.FireTime.After(now) {
			due = append(due, reminder.Clone())
		}
	}
	return due
}

// Apply records fired reminders: repeating ones move to their next
// occurrence after now, one-shot ones are evicted. A reminder that was deleted
// or whose fire time changed since it was picked up is left alone. State is
// saved once, and saves that failed earlier are retried.
func (r *registry) Apply(ctx context.Context, fired []*entity.Reminder, now time.Time) (rescheduled, removed int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	evict := make(map[int64]bool)
	for _, f := range fired {
		idx := r.indexByID(f.ID)
		if idx < 0 {
			continue
		}

		current := r.reminders[idx]
		if !current.FireTime.Equal(f.FireTime) {
			continue
		}

		if current.IsRepeating() {
			current.FireTime = NextOccurrence(current.FireTime, *current.RepeatInterval, now)
			rescheduled++
			continue
		}

		evict[current.ID] = true
	}

	if len(evict) > 0 {
		kept := r.reminders[:0]
		for _, reminder := range r.reminders {
			if !evict[reminder.ID] {
				kept = append(kept, reminder)
			}
		}
		r.reminders = kept
		removed = len(evict)
	}

	if rescheduled > 0 || removed > 0 || r.dirty {
		return rescheduled, removed, r.persist(ctx)
	}

	return rescheduled, removed, r.persistTimezones(ctx)
}

// NextOccurrence advances from by whole intervals until it is strictly after now.
// Missed occurrences are skipped rather than replayed.
func NextOccurrence(from time.Time, intervalMinutes int, now time.Time) time.Time {
	step := time.Duration(intervalMinutes) * time.Minute
	next := from.Add(step)
	if next.After(now) {
		return next
	}

	missed := now.Sub(next)/step + 1
	return next.Add(missed * step)
}

// persist must be called with mu held
func (r *registry) persist(ctx context.Context) error {
	metrics.ActiveReminders.Set(float64(len(r.reminders)))

	if err := r.store.SaveReminders(ctx, r.reminders); err != nil {
		r.dirty = true
		metrics.PersistFailuresTotal.Inc()
		r.log.Error("failed to save reminders", zap.Int("reminders", len(r.reminders)), zap.Error(err))
		return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
	}

	r.dirty = false
	return r.persistTimezones(ctx)
}

// persistTimezones saves every pending timezone and must be called with mu held
func (r *registry) persistTimezones(ctx context.Context) error {
	for userID := range r.pendingTimezones {
		tz := entity.UserTimezone{UserID: userID, Timezone: r.timezones[userID]}
		if err := r.store.SaveTimezone(ctx, tz); err != nil {
			metrics.PersistFailuresTotal.Inc()
			r.log.Error("failed to save timezone",
				zap.String("user", userID),
				zap.Int("pending", len(r.pendingTimezones)),
				zap.Error(err))
			return fmt.Errorf("%w: %w", domain.ErrPersistence, err)
		}
		delete(r.pendingTimezones, userID)
	}
	return nil
}

func (r *registry) nextID() int64 {
	var maxID int64
	for _, reminder := range r.reminders {
		if reminder.ID > maxID {
			maxID = reminder.ID
		}
	}
	return maxID + 1
}

func (r *registry) indexOf(userID string, id int64) int {
	idx := r.indexByID(id)
	if idx < 0 || r.reminders[idx].UserID != userID {
		return -1
	}
	return idx
}

func (r *registry) indexByID(id int64) int {
	for i, reminder := range r.reminders {
		if reminder.ID == id {
			return i
		}
	}
	return -1
}
