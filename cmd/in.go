package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfortes/ponto/internal/model"
	"github.com/mfortes/ponto/internal/timecalc"
)

var inCmd = &cobra.Command{
	Use:   "in",
	Short: "Punch the clock",
	Long: `in records a punch for today. The first punch of a day clocks you in;
the next one clocks you out, and so on. Whether the punch opens or closes
an interval depends only on today's record state.`,
	Args: cobra.NoArgs,
	RunE: runIn,
}

func runIn(cmd *cobra.Command, args []string) error {
	now := time.Now()

	app := mustOpen()
	defer app.close()
	tracker := app.mustTracker()
	mustRegistered(tracker)

	rec, err := tracker.ClockIn(now)
	if err != nil {
		fail(err)
	}

	clock := timecalc.FormatClock(now)
	if rec.State() == model.StateOpen {
		fmt.Printf("Clocked in at %s.\n", clock)
	} else {
		fmt.Printf("Clocked out at %s.\n", clock)
	}
	fmt.Printf("Worked today: %s\n", tracker.TodayTotal(now))
	return nil
}
