// Package checkin implements the streak-continuity rule for daily
// check-ins.
package checkin

import (
	"time"

	"github.com/areuok/areuok/internal/models"
)

// Today returns the current UTC date at calendar-day granularity.
func Today() string {
	return time.Now().UTC().Format(models.DateFormat)
}

// Next produces the record to persist after a check-in on today's date.
// It is a pure function of the previous record (nil if none) and the date;
// persistence and notifications happen only after it returns.
//
// Rules, in order:
//  1. no previous record        -> new record, streak 1
//  2. last date == today        -> no-op, previous record returned unchanged
//  3. last date == yesterday    -> streak continues, today appended
//  4. anything else             -> reset: streak 1, history cleared
//
// An unparsable previous date falls into case 4 rather than failing the
// operation.
func Next(prev *models.CheckinRecord, name, today string) *models.CheckinRecord {
	if prev != nil && prev.LastSigninDate == today {
		return prev
	}

	rec := &models.CheckinRecord{
		Name:           name,
		LastSigninDate: today,
		Streak:         1,
		SigninHistory:  []string{},
	}

	if continues(prev, today) {
		rec.Streak = prev.Streak + 1
		rec.SigninHistory = append(rec.SigninHistory, prev.SigninHistory...)
	}

	if !rec.HasHistoryEntry(today) {
		rec.SigninHistory = append(rec.SigninHistory, today)
	}

	return rec
}

// continues reports whether the previous record's last date is exactly one
// calendar day before today.
func continues(prev *models.CheckinRecord, today string) bool {
	if prev == nil {
		return false
	}

	last, err := time.Parse(models.DateFormat, prev.LastSigninDate)
	if err != nil {
		return false
	}
	day, err := time.Parse(models.DateFormat, today)
	if err != nil {
		return false
	}

	return last.AddDate(0, 0, 1).Equal(day)
}
