package model

import (
	"regexp"
	"strings"
)

// DayRecord holds one calendar day's punches. Both lists are ordered
// most-recent-first and timeIn[i] pairs with timeOut[i] to form the i-th
// work interval.
type DayRecord struct {
	Date    string   `json:"date"`    // DD-MM-YYYY
	TimeIn  []string `json:"timeIn"`  // HH:MM:SS
	TimeOut []string `json:"timeOut"` // HH:MM:SS
}

// RecordState says whether a record is awaiting a clock-out.
type RecordState int

const (
	StateClosed RecordState = iota
	StateOpen
)

func (s RecordState) String() string {
	if s == StateOpen {
		return "open"
	}
	return "closed"
}

// State derives the record's punch state: a record with more clock-ins than
// clock-outs has an open interval.
func (r DayRecord) State() RecordState {
	if len(r.TimeIn) > len(r.TimeOut) {
		return StateOpen
	}
	return StateClosed
}

// Clone returns a deep copy; punch lists are never shared between copies.
func (r DayRecord) Clone() DayRecord {
	c := DayRecord{Date: r.Date}
	c.TimeIn = append([]string{}, r.TimeIn...)
	c.TimeOut = append([]string{}, r.TimeOut...)
	return c
}

// Profile is the root persisted entity: identity, weekly quota and all
// attendance records, most-recent-first by date.
//
// The JSON field names match the backup format exported by earlier versions
// of the app, so old backup files import unchanged.
type Profile struct {
	Name      string      `json:"name"`
	WorkHours string      `json:"workHours"` // weekly quota in hours, decimal digits only
	Records   []DayRecord `json:"clockIn"`
}

// Empty returns the zero profile with a present (non-nil) record sequence.
func Empty() Profile {
	return Profile{Records: []DayRecord{}}
}

// Clone returns a deep copy of the profile.
func (p Profile) Clone() Profile {
	c := Profile{Name: p.Name, WorkHours: p.WorkHours, Records: make([]DayRecord, 0, len(p.Records))}
	for _, r := range p.Records {
		c.Records = append(c.Records, r.Clone())
	}
	return c
}

var digitsPattern = regexp.MustCompile(`^\d+$`)

// Complete reports whether the profile carries usable identity data: a
// non-blank name and an all-digit weekly quota. Only complete profiles are
// persisted.
func (p Profile) Complete() bool {
	return strings.TrimSpace(p.Name) != "" && digitsPattern.MatchString(p.WorkHours)
}
