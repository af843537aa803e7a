package model

import (
	"encoding/json"
	"regexp"
)

var (
	// datePattern matches DD-MM-YYYY with day 01-31 and month 01-12.
	datePattern = regexp.MustCompile(`^(0[1-9]|[12][0-9]|3[01])-(0[1-9]|1[0-2])-\d{4}$`)
	// clockPattern matches a 24-hour HH:MM:SS time of day.
	clockPattern = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]:[0-5][0-9]$`)
)

// ValidDate reports whether s is a DD-MM-YYYY calendar date.
func ValidDate(s string) bool { return datePattern.MatchString(s) }

// ValidClock reports whether s is a 24-hour HH:MM:SS time of day.
func ValidClock(s string) bool { return clockPattern.MatchString(s) }

// ValidRecord checks a single record's format invariants: a well-formed
// date, no more clock-outs than clock-ins, and every punch in HH:MM:SS.
// Chronological ordering within a day is deliberately not checked.
func ValidRecord(r DayRecord) bool {
	if !ValidDate(r.Date) {
		return false
	}
	if r.TimeIn == nil || r.TimeOut == nil {
		return false
	}
	if len(r.TimeOut) > len(r.TimeIn) {
		return false
	}
	for _, t := range r.TimeIn {
		if !ValidClock(t) {
			return false
		}
	}
	for _, t := range r.TimeOut {
		if !ValidClock(t) {
			return false
		}
	}
	return true
}

// CheckRecords decides whether profile data is safe to compute on. It is
// pure and total: any malformed input yields false, never a panic.
func CheckRecords(p Profile) bool {
	if p.Records == nil {
		return false
	}
	for _, r := range p.Records {
		if !ValidRecord(r) {
			return false
		}
	}
	return true
}

// profileFields is the exact top-level field set of the persisted Profile
// object, used by the import shape gate.
var profileFields = []string{"name", "workHours", "clockIn"}

// LooksLikeProfile is the coarse shape gate for imported files: the raw
// JSON must be an object whose top-level field set matches the Profile
// shape exactly, no more and no fewer. It says nothing about the validity
// of the data inside.
func LooksLikeProfile(raw []byte) bool {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return false
	}
	if len(obj) != len(profileFields) {
		return false
	}
	for _, f := range profileFields {
		if _, ok := obj[f]; !ok {
			return false
		}
	}
	return true
}
