// Package engine implements the attendance record engine: the mutation
// operations over a single profile, the daily duration calculator and the
// week/month window aggregates.
package engine

import (
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/mfortes/ponto/internal/model"
	"github.com/mfortes/ponto/internal/timecalc"
)

var (
	// ErrDuplicateDate reports an AddRecord conflict; the attempted record
	// is discarded intact.
	ErrDuplicateDate = errors.New("a record with that date already exists")
	// ErrNoChange reports an edit that differs in nothing from the current
	// values. Informational, not a failure.
	ErrNoChange = errors.New("nothing to change")
	// ErrShapeMismatch reports an imported file that is not profile-shaped.
	ErrShapeMismatch = errors.New("file does not look like a profile backup")
	// ErrValidation reports data violating the record format invariants.
	ErrValidation = errors.New("data fails format validation")
	// ErrNoRecord reports an index with no record behind it.
	ErrNoRecord = errors.New("no record at that position")
)

// Store is the durable home of the profile. Load's second result is false
// when nothing is stored yet.
type Store interface {
	Load() (model.Profile, bool, error)
	Save(model.Profile) error
	Clear() error
}

// Tracker owns the active profile. All mutations go through it: each one
// builds a new profile value, persists it whole, then replaces the owned
// value, so a failed operation leaves both memory and storage untouched.
type Tracker struct {
	mu        sync.Mutex
	store     Store
	weekStart time.Weekday
	profile   model.Profile
}

// Load initializes a tracker from the store, substituting the empty
// profile when nothing is stored yet.
func Load(store Store, weekStart time.Weekday) (*Tracker, error) {
	p, _, err := store.Load()
	if err != nil {
		return nil, err
	}
	sortRecords(p.Records)
	return &Tracker{store: store, weekStart: weekStart, profile: p}, nil
}

// New returns a tracker over the empty profile without consulting the
// store. The recovery flow uses it to re-import on top of corrupt data.
func New(store Store, weekStart time.Weekday) *Tracker {
	return &Tracker{store: store, weekStart: weekStart, profile: model.Empty()}
}

// Profile returns a copy of the active profile; callers never alias the
// tracker's own record slices.
func (t *Tracker) Profile() model.Profile {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profile.Clone()
}

// Registered reports whether a complete profile is loaded. The app equates
// this with being authenticated.
func (t *Tracker) Registered() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.profile.Complete()
}

// commit persists p and makes it the active profile. Incomplete profiles
// are kept in memory only, matching the save gate on profile completeness.
func (t *Tracker) commit(p model.Profile) error {
	if p.Complete() {
		if err := t.store.Save(p); err != nil {
			return err
		}
	}
	t.profile = p
	return nil
}

// sortRecords restores the canonical ordering: descending by parsed date,
// most recent first.
func sortRecords(records []model.DayRecord) {
	sort.SliceStable(records, func(i, j int) bool {
		di, erri := timecalc.ParseDate(records[i].Date)
		dj, errj := timecalc.ParseDate(records[j].Date)
		if erri != nil || errj != nil {
			return false
		}
		return di.After(dj)
	})
}

// indexByDate returns the position of the record for date, or -1.
func indexByDate(records []model.DayRecord, date string) int {
	for i, r := range records {
		if r.Date == date {
			return i
		}
	}
	return -1
}
