package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm <position>...",
	Short: "Delete one or more records",
	Long: `rm deletes the records at the given positions (as shown by 'ponto list').
Several positions can be removed in one call; either all of them are
deleted or none is.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRm,
}

func runRm(cmd *cobra.Command, args []string) error {
	indices, err := parseIndexArgs(args)
	if err != nil {
		fail(err)
	}

	app := mustOpen()
	defer app.close()
	tracker := app.mustTracker()
	mustRegistered(tracker)

	removed, err := tracker.DeleteRecords(indices)
	if err != nil {
		fail(err)
	}

	dates := make([]string, 0, len(removed))
	for _, r := range removed {
		dates = append(dates, r.Date)
	}
	if len(dates) == 1 {
		fmt.Printf("Deleted the record for %s.\n", dates[0])
	} else {
		fmt.Printf("Deleted %d records: %s.\n", len(dates), strings.Join(dates, ", "))
	}
	return nil
}
