package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mfortes/ponto/internal/model"
	"github.com/mfortes/ponto/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show today's punch state and totals",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	now := time.Now()

	app := mustOpen()
	defer app.close()
	tracker := app.mustTracker()
	mustRegistered(tracker)

	profile := tracker.Profile()
	fmt.Println(render(titleStyle, fmt.Sprintf("%s — %s", profile.Name, timecalc.FormatDate(now))))

	var today *model.DayRecord
	for i := range profile.Records {
		if profile.Records[i].Date == timecalc.FormatDate(now) {
			today = &profile.Records[i]
			break
		}
	}

	switch {
	case today == nil:
		fmt.Println(render(mutedStyle, "No punches today."))
	case today.State() == model.StateOpen:
		since := today.TimeIn[len(today.TimeIn)-1]
		fmt.Printf("%s %s\n", render(labelStyle, "Clocked in:"), render(valueStyle, "since "+since))
	case len(today.TimeOut) == 0:
		fmt.Println(render(mutedStyle, "No punches today."))
	default:
		lastOut := today.TimeOut[len(today.TimeOut)-1]
		fmt.Printf("%s %s\n", render(labelStyle, "Clocked in:"), render(mutedStyle, "no (last out "+lastOut+")"))
	}

	fmt.Printf("%s  %s\n", render(labelStyle, "Today:"), render(valueStyle, tracker.TodayTotal(now)))
	fmt.Printf("%s  %s\n", render(labelStyle, "Week:"), render(valueStyle, tracker.WeeklyTotal(now)))

	remaining := tracker.RemainingQuota(now)
	style := valueStyle
	if len(remaining) > 0 && remaining[0] == '-' {
		// Over quota this week.
		style = alertStyle
	}
	fmt.Printf("%s %s\n", render(labelStyle, "Quota:"), render(style, remaining+" remaining"))
	return nil
}
