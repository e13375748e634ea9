package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	fsw "github.com/FraknToastr/CityEngine/internal/adapters/fsnotify"
	"github.com/FraknToastr/CityEngine/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-run the crosswalk whenever an input changes",
	Long:  "Runs the crosswalk once, then watches the source table, catalog, and rules file and re-runs on every change until interrupted.",
	RunE:  runWatch,
}

func init() {
	addRunFlags(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg := runConfig()
	a, err := app.New(cfg, newLogger())
	if err != nil {
		return err
	}

	// First run before watching, so broken inputs fail fast.
	result, err := a.Run()
	if err != nil {
		return err
	}
	fmt.Print(formatRunResult(result))

	w, err := fsw.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Stop()

	// Capacity-1 trigger: event bursts during a run collapse into one
	// pending re-run instead of queueing.
	trigger := make(chan string, 1)
	err = w.Watch(cfg.WatchPaths(), func(path string) {
		select {
		case trigger <- path:
		default:
		}
	})
	if err != nil {
		return err
	}

	fmt.Printf("⚡ watching %d inputs — Ctrl-C to stop\n", len(cfg.WatchPaths()))

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case path := <-trigger:
			fmt.Printf("⚡ %s changed — re-running\n", path)
			result, err := a.Run()
			if err != nil {
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
				continue
			}
			fmt.Print(formatRunResult(result))

		case <-sigCh:
			fmt.Println("\n⚡ shutting down...")
			return nil
		}
	}
}
