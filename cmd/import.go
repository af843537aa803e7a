package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mfortes/ponto/internal/engine"
	"github.com/mfortes/ponto/internal/storage"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace your profile from a backup file",
	Long: `import reads a JSON backup and replaces the whole profile with it. The
file must match the backup shape exactly, with dates in DD-MM-YYYY and
times in HH:MM:SS; anything else is rejected without touching your data.
import also works when the stored data is corrupt, as the repair half of
the recovery flow.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	raw, err := os.ReadFile(args[0])
	if err != nil {
		fail(fmt.Errorf("reading backup file: %w", err))
	}

	app := mustOpen()
	defer app.close()

	// Load the current profile if possible; over corrupt data, import runs
	// on an empty tracker so a repaired backup can overwrite the bad state.
	tracker, err := engine.Load(app.store, app.cfg.WeekStartDay())
	if errors.Is(err, storage.ErrCorrupt) {
		fmt.Fprintln(os.Stderr, "Warning: stored data is corrupt; a successful import will replace it.")
		tracker = engine.New(app.store, app.cfg.WeekStartDay())
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err := tracker.Import(raw); err != nil {
		fail(err)
	}

	profile := tracker.Profile()
	fmt.Printf("Imported profile for %q (%d records).\n", profile.Name, len(profile.Records))
	return nil
}
