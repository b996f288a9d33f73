package domain

import (
	"strconv"
	"strings"
	"time"
)

// Reminder is the payload delivered when a one-shot reminder fires.
type Reminder struct {
	TodoID   int64
	RoomCode string
	UserID   int64
	Category Category
	Task     string
}

// ParseReminderTime parses a reminder time from user text against now.
// Accepted forms:
//   - "HH:MM" — the next occurrence of that clock time; if it already
//     passed today the result rolls forward to tomorrow.
//   - "in N hours" / "in N minutes" — relative offset from now.
//
// Anything else yields ErrInvalidTime.
func ParseReminderTime(text string, now time.Time) (time.Time, error) {
	text = strings.ToLower(strings.TrimSpace(text))

	if rest, ok := strings.CutPrefix(text, "in "); ok {
		fields := strings.Fields(rest)
		if len(fields) != 2 {
			return time.Time{}, ErrInvalidTime
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n <= 0 {
			return time.Time{}, ErrInvalidTime
		}
		switch fields[1] {
		case "hour", "hours":
			return now.Add(time.Duration(n) * time.Hour), nil
		case "minute", "minutes":
			return now.Add(time.Duration(n) * time.Minute), nil
		}
		return time.Time{}, ErrInvalidTime
	}

	hour, minute, err := parseClock(text)
	if err != nil {
		return time.Time{}, err
	}

	t := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !t.After(now) {
		t = t.AddDate(0, 0, 1)
	}
	return t, nil
}

// ParseReminderDate parses a reminder date: "today", "tomorrow" or a literal
// "DD.MM.YYYY". Dates before today yield ErrPastTime.
func ParseReminderDate(text string, now time.Time) (time.Time, error) {
	text = strings.ToLower(strings.TrimSpace(text))

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch text {
	case "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	}

	d, err := time.ParseInLocation("02.01.2006", text, now.Location())
	if err != nil {
		return time.Time{}, ErrInvalidTime
	}
	if d.Before(today) {
		return time.Time{}, ErrPastTime
	}
	return d, nil
}

// CombineDateTime applies a literal "HH:MM" clock time to a previously
// chosen date.
func CombineDateTime(date time.Time, clock string) (time.Time, error) {
	hour, minute, err := parseClock(strings.TrimSpace(clock))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()), nil
}

func parseClock(text string) (hour, minute int, err error) {
	hh, mm, ok := strings.Cut(text, ":")
	if !ok {
		return 0, 0, ErrInvalidTime
	}
	hour, err = strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, ErrInvalidTime
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, ErrInvalidTime
	}
	return hour, minute, nil
}
