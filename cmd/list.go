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

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all day records",
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	now := time.Now()

	app := mustOpen()
	defer app.close()
	tracker := app.mustTracker()
	mustRegistered(tracker)

	profile := tracker.Profile()
	printRecords(profile.Records, now)
	return nil
}

// printRecords renders the record table, most recent first, with the
// 1-based positions the edit/rm commands expect.
func printRecords(records []model.DayRecord, now time.Time) {
	if len(records) == 0 {
		fmt.Println("No records yet.")
		return
	}

	fmt.Printf("%-4s %-12s %-7s %-28s %-28s %s\n", "#", "Date", "State", "In", "Out", "Worked")
	for i, r := range records {
		worked := timecalc.FormatDuration(engine.WorkedSeconds(r, now))
		fmt.Printf("%-4d %-12s %-7s %-28s %-28s %s\n",
			i+1,
			r.Date,
			r.State().String(),
			strings.Join(r.TimeIn, ","),
			strings.Join(r.TimeOut, ","),
			worked,
		)
	}
}
