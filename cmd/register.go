package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerHours string

var registerCmd = &cobra.Command{
	Use:   "register <name>",
	Short: "Create your profile",
	Long: `register creates a fresh profile with your display name and weekly work
quota. An existing profile is replaced wholesale, records included.`,
	Args: cobra.ExactArgs(1),
	RunE: runRegister,
}

func init() {
	registerCmd.Flags().StringVar(&registerHours, "hours", "40", "Weekly work quota in hours")
}

func runRegister(cmd *cobra.Command, args []string) error {
	app := mustOpen()
	defer app.close()

	tracker := app.mustTracker()
	if err := tracker.Register(args[0], registerHours); err != nil {
		fail(err)
	}

	fmt.Printf("Registered %q with a weekly quota of %s hours.\n", args[0], registerHours)
	return nil
}
