// Package models defines the core data structures for areuok.
package models

// DateFormat is the calendar-date layout used everywhere a date is
// persisted or compared. Dates carry no time component.
const DateFormat = "2006-01-02"

// CheckinRecord holds a user's daily check-in state.
//
// LastSigninDate is always the most recent entry in SigninHistory. Streak is
// tracked incrementally by the checkin package, never recomputed from the
// history.
type CheckinRecord struct {
	Name           string   `json:"name"`
	LastSigninDate string   `json:"last_signin_date"`
	Streak         int      `json:"streak"`
	SigninHistory  []string `json:"signin_history"`
}

// SignedInOn reports whether the record shows a check-in on the given date.
func (r *CheckinRecord) SignedInOn(date string) bool {
	if r == nil {
		return false
	}
	return r.LastSigninDate == date
}

// HasHistoryEntry reports whether the given date is already present in the
// check-in history.
func (r *CheckinRecord) HasHistoryEntry(date string) bool {
	if r == nil {
		return false
	}
	for _, d := range r.SigninHistory {
		if d == date {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of the record.
func (r *CheckinRecord) Clone() *CheckinRecord {
	if r == nil {
		return nil
	}
	c := *r
	c.SigninHistory = append([]string(nil), r.SigninHistory...)
	return &c
}
