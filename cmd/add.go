package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfortes/ponto/internal/engine"
	"github.com/mfortes/ponto/internal/model"
	"github.com/mfortes/ponto/internal/timecalc"
)

var (
	addIn  string
	addOut string
)

var addCmd = &cobra.Command{
	Use:   "add <DD-MM-YYYY>",
	Short: "Add a full day record by hand",
	Long: `add inserts a record for a day you forgot to punch. Clock-ins and
clock-outs are comma-separated HH:MM:SS times; the i-th clock-in pairs with
the i-th clock-out. A day can have at most one record.`,
	Args: cobra.ExactArgs(1),
	RunE: runAdd,
}

func init() {
	addCmd.Flags().StringVar(&addIn, "in", "", "Comma-separated clock-in times (HH:MM:SS)")
	addCmd.Flags().StringVar(&addOut, "out", "", "Comma-separated clock-out times (HH:MM:SS)")
	addCmd.MarkFlagRequired("in")
}

// splitTimes splits a comma-separated time list, keeping empty positions so
// edit can address individual slots.
func splitTimes(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func runAdd(cmd *cobra.Command, args []string) error {
	now := time.Now()

	app := mustOpen()
	defer app.close()
	tracker := app.mustTracker()
	mustRegistered(tracker)

	rec := model.DayRecord{
		Date:    args[0],
		TimeIn:  splitTimes(addIn),
		TimeOut: splitTimes(addOut),
	}
	if err := tracker.AddRecord(rec); err != nil {
		fail(err)
	}

	fmt.Printf("Added record for %s (%s worked).\n",
		rec.Date, timecalc.FormatDuration(engine.WorkedSeconds(rec, now)))
	return nil
}
