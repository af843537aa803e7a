package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfortes/ponto/internal/engine"
)

var (
	editDate string
	editIn   string
	editOut  string
)

var editCmd = &cobra.Command{
	Use:   "edit <position>",
	Short: "Edit a record in place",
	Long: `edit changes parts of the record at the given position (as shown by
'ponto list'). Only the flags you pass are applied; within a time list, an
empty position keeps the current value, so "--in ,13:00:00" changes only
the second clock-in.`,
	Args: cobra.ExactArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editDate, "date", "", "New date (DD-MM-YYYY)")
	editCmd.Flags().StringVar(&editIn, "in", "", "Replacement clock-in times, comma-separated")
	editCmd.Flags().StringVar(&editOut, "out", "", "Replacement clock-out times, comma-separated")
}

func runEdit(cmd *cobra.Command, args []string) error {
	indices, err := parseIndexArgs(args)
	if err != nil {
		fail(err)
	}

	app := mustOpen()
	defer app.close()
	tracker := app.mustTracker()
	mustRegistered(tracker)

	rec, err := tracker.EditRecord(indices[0], editDate, splitTimes(editIn), splitTimes(editOut))
	if errors.Is(err, engine.ErrNoChange) {
		fmt.Println("No changes.")
		return nil
	}
	if err != nil {
		fail(err)
	}

	fmt.Printf("Updated record for %s.\n", rec.Date)
	return nil
}
