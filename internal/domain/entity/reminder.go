package entity

import "time"

// Reminder is a one-shot or repeating message delivered into a channel.
// FireTime is always UTC and truncated to the minute.
type Reminder struct {
	ID             int64
	UserID         string
	ChannelID      string
	FireTime       time.Time
	Message        string
	RepeatInterval *int // minutes, nil for one-shot reminders
}

func (r *Reminder) IsRepeating() bool {
	return r.RepeatInterval != nil && *r.RepeatInterval > 0
}

// Clone returns a deep copy so callers never share state with the registry
func (r *Reminder) Clone() *Reminder {
	c := *r
	if r.RepeatInterval != nil {
		interval := *r.RepeatInterval
		c.RepeatInterval = &interval
	}
	return &c
}

// IntPtr is a small helper to build optional repeat intervals
func IntPtr(v int) *int {
	return &v
}
