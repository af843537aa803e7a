package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var reportFormat string

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show worked time per day, week and month",
	Long: `report prints the aggregate figures: hours worked today, in the current
week and month, and how much of the weekly quota remains. The week and
month windows follow the most recent record's date.`,
	Args: cobra.NoArgs,
	RunE: runReport,
}

func init() {
	reportCmd.Flags().StringVar(&reportFormat, "format", "text", "Output format: text, json")
}

func runReport(cmd *cobra.Command, args []string) error {
	now := time.Now()

	app := mustOpen()
	defer app.close()
	tracker := app.mustTracker()
	mustRegistered(tracker)

	profile := tracker.Profile()
	figures := struct {
		Name      string `json:"name"`
		Quota     string `json:"weekly_quota_hours"`
		Today     string `json:"today"`
		Week      string `json:"week"`
		Month     string `json:"month"`
		Remaining string `json:"remaining"`
	}{
		Name:      profile.Name,
		Quota:     profile.WorkHours,
		Today:     tracker.TodayTotal(now),
		Week:      tracker.WeeklyTotal(now),
		Month:     tracker.MonthlyTotal(now),
		Remaining: tracker.RemainingQuota(now),
	}

	switch reportFormat {
	case "json":
		data, err := json.MarshalIndent(figures, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "error encoding JSON:", err)
			os.Exit(2)
		}
		fmt.Println(string(data))
	default:
		fmt.Println(render(titleStyle, fmt.Sprintf("Report for %s (quota %sh/week)", figures.Name, figures.Quota)))
		fmt.Printf("%s     %s\n", render(labelStyle, "Today"), render(valueStyle, figures.Today))
		fmt.Printf("%s      %s\n", render(labelStyle, "Week"), render(valueStyle, figures.Week))
		fmt.Printf("%s     %s\n", render(labelStyle, "Month"), render(valueStyle, figures.Month))
		style := valueStyle
		if len(figures.Remaining) > 0 && figures.Remaining[0] == '-' {
			style = alertStyle
		}
		fmt.Printf("%s %s\n", render(labelStyle, "Remaining"), render(style, figures.Remaining))
	}
	return nil
}
