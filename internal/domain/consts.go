package domain

// TimeLayout is the minute-precision layout used for stored and user-supplied
// absolute times (YYYY-MM-DD HH:MM)
const TimeLayout = "2006-01-02 15:04"

// ClockLayout is the layout of a bare wall-clock time (HH:MM)
const ClockLayout = "15:04"

// DefaultTimezone is used for users that never configured a timezone
const DefaultTimezone = "UTC"

// DefaultScanSchedule runs the scheduler once a minute
const DefaultScanSchedule = "@every 1m"
