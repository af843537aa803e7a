package engine

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/mfortes/ponto/internal/model"
	"github.com/mfortes/ponto/internal/timecalc"
)

// Register replaces the profile wholesale with a fresh one holding only
// identity data and an empty record set.
func (t *Tracker) Register(name, workHours string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := model.Empty()
	p.Name = name
	p.WorkHours = workHours
	if !p.Complete() {
		return fmt.Errorf("%w: name must be non-blank and weekly hours a plain number", ErrValidation)
	}
	return t.commit(p)
}

// EditProfile applies a sparse update to the identity fields. Empty
// arguments mean "keep the current value".
func (t *Tracker) EditProfile(name, workHours string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	p := t.profile.Clone()
	changed := false
	if name != "" && name != p.Name {
		p.Name = name
		changed = true
	}
	if workHours != "" && workHours != p.WorkHours {
		p.WorkHours = workHours
		changed = true
	}
	if !changed {
		return ErrNoChange
	}
	if !p.Complete() {
		return fmt.Errorf("%w: name must be non-blank and weekly hours a plain number", ErrValidation)
	}
	return t.commit(p)
}

// ClockIn records a punch for the calendar day of now. A day with no
// record gets a fresh one; a day with an open interval gets the clock-out;
// a closed day gets another clock-in. Punch lists grow at the head, most
// recent first.
func (t *Tracker) ClockIn(now time.Time) (model.DayRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	date := timecalc.FormatDate(now)
	clock := timecalc.FormatClock(now)

	p := t.profile.Clone()
	i := indexByDate(p.Records, date)
	if i < 0 {
		rec := model.DayRecord{Date: date, TimeIn: []string{clock}, TimeOut: []string{}}
		p.Records = append([]model.DayRecord{rec}, p.Records...)
		i = 0
	} else {
		rec := &p.Records[i]
		switch rec.State() {
		case model.StateOpen:
			rec.TimeOut = append([]string{clock}, rec.TimeOut...)
		case model.StateClosed:
			rec.TimeIn = append([]string{clock}, rec.TimeIn...)
		}
	}
	sortRecords(p.Records)

	i = indexByDate(p.Records, date)
	result := p.Records[i].Clone()
	if err := t.commit(p); err != nil {
		return model.DayRecord{}, err
	}
	return result, nil
}

// AddRecord inserts a fully specified record. A record for the same date
// already existing is a conflict: the add is discarded intact and
// ErrDuplicateDate reported. The record sequence is re-sorted descending
// by date after every successful add.
func (t *Tracker) AddRecord(rec model.DayRecord) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !model.ValidRecord(rec) {
		return fmt.Errorf("%w: dates must be DD-MM-YYYY, times HH:MM:SS, and clock-outs cannot outnumber clock-ins", ErrValidation)
	}
	if indexByDate(t.profile.Records, rec.Date) >= 0 {
		return ErrDuplicateDate
	}

	p := t.profile.Clone()
	p.Records = append(p.Records, rec.Clone())
	sortRecords(p.Records)
	return t.commit(p)
}

// EditRecord applies a sparse update to the record at index. An empty date
// keeps the current one; for the punch lists, only supplied non-empty
// positions overwrite the corresponding existing position, so the lists
// never change length. ErrNoChange is reported when nothing differs.
func (t *Tracker) EditRecord(index int, date string, timeIn, timeOut []string) (model.DayRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if index < 0 || index >= len(t.profile.Records) {
		return model.DayRecord{}, ErrNoRecord
	}

	p := t.profile.Clone()
	rec := &p.Records[index]
	changed := false

	if date != "" && date != rec.Date {
		if !model.ValidDate(date) {
			return model.DayRecord{}, fmt.Errorf("%w: dates must be DD-MM-YYYY", ErrValidation)
		}
		if j := indexByDate(p.Records, date); j >= 0 && j != index {
			return model.DayRecord{}, ErrDuplicateDate
		}
		rec.Date = date
		changed = true
	}

	overwrite := func(current, supplied []string) (bool, error) {
		touched := false
		for i := 0; i < len(current) && i < len(supplied); i++ {
			if supplied[i] == "" || supplied[i] == current[i] {
				continue
			}
			if !model.ValidClock(supplied[i]) {
				return false, fmt.Errorf("%w: times must be HH:MM:SS", ErrValidation)
			}
			current[i] = supplied[i]
			touched = true
		}
		return touched, nil
	}

	touched, err := overwrite(rec.TimeIn, timeIn)
	if err != nil {
		return model.DayRecord{}, err
	}
	changed = changed || touched
	touched, err = overwrite(rec.TimeOut, timeOut)
	if err != nil {
		return model.DayRecord{}, err
	}
	changed = changed || touched

	if !changed {
		return model.DayRecord{}, ErrNoChange
	}

	result := rec.Clone()
	sortRecords(p.Records)
	if err := t.commit(p); err != nil {
		return model.DayRecord{}, err
	}
	return result, nil
}

// DeleteRecord removes the record at index.
func (t *Tracker) DeleteRecord(index int) (model.DayRecord, error) {
	removed, err := t.DeleteRecords([]int{index})
	if err != nil {
		return model.DayRecord{}, err
	}
	return removed[0], nil
}

// DeleteRecords removes the records at the given positions in one
// mutation. Duplicate indices are collapsed; any out-of-range index
// rejects the whole call.
func (t *Tracker) DeleteRecords(indices []int) ([]model.DayRecord, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	seen := map[int]bool{}
	var order []int
	for _, i := range indices {
		if i < 0 || i >= len(t.profile.Records) {
			return nil, ErrNoRecord
		}
		if !seen[i] {
			seen[i] = true
			order = append(order, i)
		}
	}
	if len(order) == 0 {
		return nil, ErrNoRecord
	}

	p := t.profile.Clone()
	var removed []model.DayRecord
	for _, i := range order {
		removed = append(removed, p.Records[i].Clone())
	}

	// Remove back to front so earlier positions stay stable.
	sort.Sort(sort.Reverse(sort.IntSlice(order)))
	for _, i := range order {
		p.Records = append(p.Records[:i], p.Records[i+1:]...)
	}

	if err := t.commit(p); err != nil {
		return nil, err
	}
	return removed, nil
}

// Reset discards the profile and clears durable storage. This is the
// account deletion flow; it is the only operation that writes while the
// profile is incomplete.
func (t *Tracker) Reset() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.store.Clear(); err != nil {
		return err
	}
	t.profile = model.Empty()
	return nil
}

// Import replaces the profile wholesale from a backup file. The raw bytes
// must pass the shape gate and the record validator; a failed import
// leaves the profile untouched.
func (t *Tracker) Import(raw []byte) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !model.LooksLikeProfile(raw) {
		return ErrShapeMismatch
	}
	var p model.Profile
	if err := json.Unmarshal(raw, &p); err != nil {
		return fmt.Errorf("%w: %v", ErrShapeMismatch, err)
	}
	if !model.CheckRecords(p) || !p.Complete() {
		return fmt.Errorf("%w: dates must be DD-MM-YYYY and times HH:MM:SS", ErrValidation)
	}
	sortRecords(p.Records)
	return t.commit(p)
}

// ExportJSON serializes the profile for a backup file, indented the way
// the backup format has always been written.
func (t *Tracker) ExportJSON() ([]byte, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return json.MarshalIndent(t.profile, "", "    ")
}
