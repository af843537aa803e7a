package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mfortes/ponto/internal/model"
)

func TestValidDate(t *testing.T) {
	tests := []struct {
		date string
		want bool
	}{
		{"04-03-2024", true},
		{"31-12-1999", true},
		{"01-01-2024", true},
		{"31-13-2024", false}, // month 13
		{"00-03-2024", false}, // day 0
		{"32-03-2024", false},
		{"4-3-2024", false}, // not zero-padded
		{"2024-03-04", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, model.ValidDate(tt.date), "ValidDate(%q)", tt.date)
	}
}

func TestValidClock(t *testing.T) {
	tests := []struct {
		clock string
		want  bool
	}{
		{"00:00:00", true},
		{"09:00:00", true},
		{"23:59:59", true},
		{"24:00:00", false},
		{"12:60:00", false},
		{"12:00:60", false},
		{"9:00:00", false},
		{"12:00", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, model.ValidClock(tt.clock), "ValidClock(%q)", tt.clock)
	}
}

func record(date string, in, out []string) model.DayRecord {
	return model.DayRecord{Date: date, TimeIn: in, TimeOut: out}
}

func TestCheckRecords(t *testing.T) {
	base := model.Empty()
	base.Name = "Ana"
	base.WorkHours = "40"

	t.Run("empty record set is well-formed", func(t *testing.T) {
		assert.True(t, model.CheckRecords(base))
	})

	t.Run("missing record sequence is not", func(t *testing.T) {
		p := base
		p.Records = nil
		assert.False(t, model.CheckRecords(p))
	})

	t.Run("valid closed and open records", func(t *testing.T) {
		p := base.Clone()
		p.Records = []model.DayRecord{
			record("05-03-2024", []string{"13:00:00", "09:00:00"}, []string{"17:00:00", "12:00:00"}),
			record("04-03-2024", []string{"09:00:00"}, []string{}),
		}
		assert.True(t, model.CheckRecords(p))
	})

	t.Run("invalid month rejects", func(t *testing.T) {
		p := base.Clone()
		p.Records = []model.DayRecord{record("31-13-2024", []string{"09:00:00"}, []string{})}
		assert.False(t, model.CheckRecords(p))
	})

	t.Run("more clock-outs than clock-ins rejects", func(t *testing.T) {
		p := base.Clone()
		p.Records = []model.DayRecord{
			record("04-03-2024", []string{"09:00:00"}, []string{"17:00:00", "12:00:00"}),
		}
		assert.False(t, model.CheckRecords(p))
	})

	t.Run("malformed punch rejects", func(t *testing.T) {
		p := base.Clone()
		p.Records = []model.DayRecord{record("04-03-2024", []string{"9am"}, []string{})}
		assert.False(t, model.CheckRecords(p))
	})

	t.Run("missing punch lists reject", func(t *testing.T) {
		p := base.Clone()
		p.Records = []model.DayRecord{{Date: "04-03-2024"}}
		assert.False(t, model.CheckRecords(p))
	})

	t.Run("out-of-order punches are still well-formed", func(t *testing.T) {
		// The validator checks format, not chronology.
		p := base.Clone()
		p.Records = []model.DayRecord{
			record("04-03-2024", []string{"17:00:00"}, []string{"09:00:00"}),
		}
		assert.True(t, model.CheckRecords(p))
	})
}

func TestLooksLikeProfile(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want bool
	}{
		{"exact field set", `{"name":"Ana","workHours":"40","clockIn":[]}`, true},
		{"clockIn not a sequence still matches the shape", `{"name":"Ana","workHours":"40","clockIn":"nope"}`, true},
		{"missing field", `{"name":"Ana","workHours":"40"}`, false},
		{"extra field", `{"name":"Ana","workHours":"40","clockIn":[],"extra":1}`, false},
		{"renamed field", `{"name":"Ana","hours":"40","clockIn":[]}`, false},
		{"not an object", `[1,2,3]`, false},
		{"not JSON", `{nope`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.LooksLikeProfile([]byte(tt.raw)))
		})
	}
}
