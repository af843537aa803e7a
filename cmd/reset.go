package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete your profile and all records",
	Long: `reset wipes the stored profile, records included. This cannot be undone;
run 'ponto export' first if you might want the data back. reset also works
when the stored data is corrupt, as the discard half of the recovery flow.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "Actually delete everything")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		fmt.Fprintln(os.Stderr, "reset deletes all your data. Pass --force if you are sure.")
		os.Exit(1)
	}

	app := mustOpen()
	defer app.close()

	// Clear the store directly: the discard flow must work even when the
	// stored data cannot be loaded.
	if err := app.store.Clear(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	fmt.Println("All data deleted.")
	return nil
}
