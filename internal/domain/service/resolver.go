package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	_ "time/tzdata" // zone names must resolve on hosts without a zoneinfo database

	"github.com/diegoclair/slack-reminder-bot/internal/domain"
)

var (
	clockPattern    = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{1,2}:\d{2}$`)
)

type timezoneLookup interface {
	Timezone(userID string) string
}

type resolver struct {
	timezones timezoneLookup
	now       func() time.Time
}

func newResolver(timezones timezoneLookup, now func() time.Time) *resolver {
	return &resolver{
		timezones: timezones,
		now:       now,
	}
}

// Resolve converts user input into a UTC instant using the user's timezone
func (r *resolver) Resolve(text, userID string) (time.Time, error) {
	return ResolveAt(text, r.timezones.Timezone(userID), r.now())
}

// ResolveAt accepts "HH:MM" or "YYYY-MM-DD HH:MM" in the given zone.
// A bare clock time resolves to today in that zone, or tomorrow when today's
// instant is not strictly after now.
func ResolveAt(text, tzName string, now time.Time) (time.Time, error) {
	loc, err := LoadTimezone(tzName)
	if err != nil {
		return time.Time{}, err
	}

	text = strings.Join(strings.Fields(text), " ")

	switch {
	case clockPattern.MatchString(text):
		clock, err := time.Parse(domain.ClockLayout, text)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid time %q", domain.ErrParse, text)
		}

		localNow := now.In(loc)
		at := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
		if !at.After(now) {
			at = time.Date(localNow.Year(), localNow.Month(), localNow.Day()+1, clock.Hour(), clock.Minute(), 0, 0, loc)
		}
		return at.UTC().Truncate(time.Minute), nil

	case dateTimePattern.MatchString(text):
		at, err := time.ParseInLocation(domain.TimeLayout, text, loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid date %q", domain.ErrParse, text)
		}
		return at.UTC().Truncate(time.Minute), nil
	}

	return time.Time{}, fmt.Errorf("%w: %q does not match HH:MM or YYYY-MM-DD HH:MM", domain.ErrParse, text)
}

// LoadTimezone resolves a zone name, empty meaning UTC
func LoadTimezone(name string) (*time.Location, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return time.UTC, nil
	}

	// "Local" depends on the host and is not a zone identifier
	if strings.EqualFold(name, "local") {
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrParse, domain.ErrInvalidTimezone, name)
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: %s", domain.ErrParse, domain.ErrInvalidTimezone, name)
	}
	return loc, nil
}

// ValidateTimezone returns the canonical name of a recognized zone
func ValidateTimezone(name string) (string, error) {
	loc, err := LoadTimezone(name)
	if err != nil {
		return "", err
	}
	return loc.String(), nil
}
