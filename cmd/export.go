package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var exportRaw bool

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write a backup of your profile to a JSON file",
	Long: `export writes the whole profile as an indented JSON backup. Without an
argument the file name embeds today's date. --raw dumps the stored bytes
verbatim, which also works when the stored data is corrupt and needs
manual repair before re-importing.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExport,
}

func init() {
	exportCmd.Flags().BoolVar(&exportRaw, "raw", false, "Dump the stored bytes verbatim, skipping validation")
}

func runExport(cmd *cobra.Command, args []string) error {
	now := time.Now()

	app := mustOpen()
	defer app.close()

	var data []byte
	if exportRaw {
		raw, found, err := app.store.Raw()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
		if !found {
			fmt.Fprintln(os.Stderr, "Nothing is stored; there is no data to dump.")
			os.Exit(1)
		}
		data = raw
	} else {
		tracker := app.mustTracker()
		mustRegistered(tracker)
		var err error
		data, err = tracker.ExportJSON()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(2)
		}
	}

	path := fmt.Sprintf("ponto_%s.json", now.Format("2006-01-02"))
	if len(args) == 1 {
		path = args[0]
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		fmt.Fprintln(os.Stderr, "error writing backup:", err)
		os.Exit(2)
	}

	fmt.Printf("Backup written to %s\n", path)
	return nil
}
