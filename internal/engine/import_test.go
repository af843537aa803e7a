package engine_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfortes/ponto/internal/engine"
	"github.com/mfortes/ponto/internal/model"
)

func TestImportValidBackup(t *testing.T) {
	tr, st := newTracker(t)

	raw := []byte(`{
		"name": "Bia",
		"workHours": "36",
		"clockIn": [
			{"date": "01-03-2024", "timeIn": ["09:00:00"], "timeOut": ["17:00:00"]},
			{"date": "04-03-2024", "timeIn": ["09:00:00"], "timeOut": []}
		]
	}`)
	require.NoError(t, tr.Import(raw))

	p := tr.Profile()
	assert.Equal(t, "Bia", p.Name)
	assert.Equal(t, "36", p.WorkHours)
	require.Len(t, p.Records, 2)
	// Imported records are re-sorted most recent first.
	assert.Equal(t, "04-03-2024", p.Records[0].Date)
	require.NotNil(t, st.profile)
	assert.Equal(t, "Bia", st.profile.Name)
}

func TestImportRejectsWrongShape(t *testing.T) {
	tr, _ := newTracker(t)

	cases := [][]byte{
		[]byte(`{"name": "Bia", "workHours": "36"}`),
		[]byte(`{"name": "Bia", "workHours": "36", "clockIn": [], "extra": true}`),
		[]byte(`"just a string"`),
		[]byte(`{broken`),
	}
	for _, raw := range cases {
		assert.ErrorIs(t, tr.Import(raw), engine.ErrShapeMismatch)
	}
	assert.Equal(t, "Ana", tr.Profile().Name)
}

func TestImportRightFieldsWrongTypes(t *testing.T) {
	tr, _ := newTracker(t)

	// The field set matches the profile shape but clockIn is not a
	// sequence; the import is rejected and the profile untouched.
	raw := []byte(`{"name": "Bia", "workHours": "36", "clockIn": "nope"}`)
	err := tr.Import(raw)
	assert.Error(t, err)
	assert.ErrorIs(t, err, engine.ErrShapeMismatch)
	assert.Equal(t, "Ana", tr.Profile().Name)
}

func TestImportRejectsInvalidRecords(t *testing.T) {
	tr, _ := newTracker(t)

	cases := [][]byte{
		// Month 13.
		[]byte(`{"name": "Bia", "workHours": "36", "clockIn": [{"date": "31-13-2024", "timeIn": ["09:00:00"], "timeOut": []}]}`),
		// More clock-outs than clock-ins.
		[]byte(`{"name": "Bia", "workHours": "36", "clockIn": [{"date": "04-03-2024", "timeIn": ["09:00:00"], "timeOut": ["12:00:00", "17:00:00"]}]}`),
		// Incomplete identity.
		[]byte(`{"name": "", "workHours": "36", "clockIn": []}`),
		[]byte(`{"name": "Bia", "workHours": "many", "clockIn": []}`),
	}
	for _, raw := range cases {
		assert.ErrorIs(t, tr.Import(raw), engine.ErrValidation)
	}
	assert.Equal(t, "Ana", tr.Profile().Name)
}

func TestExportRoundTripsThroughImport(t *testing.T) {
	tr, _ := newTracker(t)
	require.NoError(t, tr.AddRecord(model.DayRecord{
		Date:    "04-03-2024",
		TimeIn:  []string{"09:00:00"},
		TimeOut: []string{"17:00:00"},
	}))

	data, err := tr.ExportJSON()
	require.NoError(t, err)
	assert.True(t, model.LooksLikeProfile(data))

	// A fresh tracker accepts its own backup.
	st := &memStore{}
	fresh, err := engine.Load(st, time.Sunday)
	require.NoError(t, err)
	require.NoError(t, fresh.Import(data))
	assert.Equal(t, tr.Profile(), fresh.Profile())
}

func TestExportIsIndented(t *testing.T) {
	tr, _ := newTracker(t)
	data, err := tr.ExportJSON()
	require.NoError(t, err)

	var compact map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &compact))
	assert.Contains(t, string(data), "\n    \"name\"")
}
