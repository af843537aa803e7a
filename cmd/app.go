package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/mfortes/ponto/internal/config"
	"github.com/mfortes/ponto/internal/engine"
	"github.com/mfortes/ponto/internal/storage"
)

// app bundles the loaded configuration and the open store for one command
// invocation. Commands open it, use it, and close the store on the way out.
type app struct {
	cfg   config.Config
	store *storage.Store
}

// mustOpen loads the config and opens the store, exiting with code 2 when
// durable storage is unavailable. Without storage there is no profile, so
// the user is treated as unregistered.
func mustOpen() *app {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Warning:", err)
		// Keep going with the defaults Load returned.
	}

	st, err := storage.Open(cfg.DataDir)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Local storage must be available before ponto can do anything.")
		os.Exit(2)
	}
	return &app{cfg: cfg, store: st}
}

func (a *app) close() {
	a.store.Close()
}

// mustTracker loads the engine over the stored profile. Corrupt or invalid
// stored data triggers the recovery flow: the user must choose between
// dumping the raw data for manual repair and discarding everything; no
// writes happen before that choice.
func (a *app) mustTracker() *engine.Tracker {
	t, err := engine.Load(a.store, a.cfg.WeekStartDay())
	if errors.Is(err, storage.ErrCorrupt) {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, "Run 'ponto export --raw' to dump the stored data for manual repair,")
		fmt.Fprintln(os.Stderr, "or 'ponto reset --force' to discard all data and start over.")
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return t
}

// mustRegistered exits unless a complete profile is loaded.
func mustRegistered(t *engine.Tracker) {
	if !t.Registered() {
		fmt.Fprintln(os.Stderr, "No profile registered yet.")
		fmt.Fprintln(os.Stderr, "Run 'ponto register <name> --hours <n>' or 'ponto import <file>' first.")
		os.Exit(1)
	}
}

// fail prints a user-facing error and exits with code 1.
func fail(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}

// parseIndexArgs converts 1-based positions from the command line (as shown
// by 'ponto list') into 0-based record indices.
func parseIndexArgs(args []string) ([]int, error) {
	indices := make([]int, 0, len(args))
	for _, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("%q is not a record position; use the numbers shown by 'ponto list'", a)
		}
		indices = append(indices, n-1)
	}
	return indices, nil
}
