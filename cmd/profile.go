package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mfortes/ponto/internal/engine"
)

var (
	profileName  string
	profileHours string
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit your name and weekly quota",
	Args:  cobra.NoArgs,
	RunE:  runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profileName, "name", "", "New display name")
	profileCmd.Flags().StringVar(&profileHours, "hours", "", "New weekly quota in hours")
}

func runProfile(cmd *cobra.Command, args []string) error {
	app := mustOpen()
	defer app.close()
	tracker := app.mustTracker()
	mustRegistered(tracker)

	if profileName == "" && profileHours == "" {
		p := tracker.Profile()
		fmt.Printf("Name:  %s\n", p.Name)
		fmt.Printf("Quota: %s hours/week\n", p.WorkHours)
		fmt.Printf("Records: %d\n", len(p.Records))
		return nil
	}

	err := tracker.EditProfile(profileName, profileHours)
	if errors.Is(err, engine.ErrNoChange) {
		fmt.Println("No changes.")
		return nil
	}
	if err != nil {
		fail(err)
	}

	p := tracker.Profile()
	fmt.Printf("Profile updated: %s, %s hours/week.\n", p.Name, p.WorkHours)
	return nil
}
