package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"beanlint.dev/pkg/beanlint/internal/controller"
	"beanlint.dev/pkg/beanlint/internal/domain"
	m "beanlint.dev/pkg/beanlint/internal/model"
)

// watchDebounce batches bursts of file events (editors save in several
// writes) into one validation pass.
const watchDebounce = 250 * time.Millisecond

const watchLongDescription = `Run all convention validators, then re-run them whenever a source file or
registration mapping file changes. On a terminal the results are shown in a
live view; otherwise each pass prints like check --keep-going.

` + pathArgsHelp

// watchCmd represents the watch command.
var watchCmd = newWatchCmd()

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [paths...]",
		Short: "Re-run validation on file changes",
		Long:  watchLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := parsePaths(args)
			if len(paths) == 0 {
				paths = []m.Path{"."}
			}

			watcher, err := fsnotify.NewWatcher()
			if err != nil {
				return fmt.Errorf("start watcher: %w", err)
			}
			defer func() { _ = watcher.Close() }()

			for _, path := range paths {
				if err := addWatchTree(watcher, string(path)); err != nil {
					return err
				}
			}

			runArgs := domain.RunArgs{
				Paths:     paths,
				Exclude:   viper.GetStringSlice(excludeConfigKey),
				Parallel:  viper.GetInt(parallelConfigKey),
				KeepGoing: true,
			}

			if controller.IsTTY(os.Stdout) {
				return watchWithTUI(cmd, watcher, runArgs)
			}

			return watchPlain(cmd, watcher, runArgs)
		},
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

// watchWithTUI feeds validation passes into the live view until the user
// quits it.
func watchWithTUI(cmd *cobra.Command, watcher *fsnotify.Watcher, args domain.RunArgs) error {
	runner := buildRunner(cmd, controller.QuietUI{})
	tui := controller.NewWatchTUI(cmd.OutOrStdout())

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	go func() {
		revalidate := func() {
			tui.RunStarted()
			results, _ := runner.Check(ctx, args)
			tui.RunFinished(results)
		}

		revalidate()
		watchLoop(ctx, watcher, revalidate)
	}()

	err := tui.Run()
	cancel()

	return err
}

// watchPlain re-runs the ordinary check output on every change, for build
// logs and non-interactive shells.
func watchPlain(cmd *cobra.Command, watcher *fsnotify.Watcher, args domain.RunArgs) error {
	ui := controller.NewSimpleUI(cmd, viper.GetString(formatConfigKey))
	runner := buildRunner(cmd, ui)
	ctx := cmd.Context()

	// Failing projects keep the watch alive; the user fixes and saves.
	_ = runner.Run(ctx, args)

	watchLoop(ctx, watcher, func() { _ = runner.Run(ctx, args) })

	return nil
}

// watchLoop blocks on watcher events, debounces bursts, and invokes
// revalidate for each batch of relevant changes.
func watchLoop(ctx context.Context, watcher *fsnotify.Watcher, revalidate func()) {
	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if !relevantChange(event) {
				continue
			}

			time.Sleep(watchDebounce)
			drainEvents(watcher)
			revalidate()

		case <-watcher.Errors:
			// Keep watching; a failed event is not fatal.
		}
	}
}

// relevantChange reports whether the event touches a file the validators
// read.
func relevantChange(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}

	base := filepath.Base(event.Name)

	return strings.HasSuffix(base, m.JavaSourceExt) || base == "spring.factories"
}

// drainEvents discards events queued during the debounce window.
func drainEvents(watcher *fsnotify.Watcher) {
	for {
		select {
		case <-watcher.Events:
		case <-watcher.Errors:
		default:
			return
		}
	}
}

// addWatchTree registers every directory under root with the watcher.
// TODO: add watches for directories created while watching.
func addWatchTree(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if !info.IsDir() {
			return nil
		}

		name := info.Name()
		if path != root {
			switch {
			case strings.HasPrefix(name, "."):
				return filepath.SkipDir
			case name == "build" || name == "target" || name == "out" || name == "node_modules":
				return filepath.SkipDir
			}
		}

		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watch %s: %w", path, err)
		}

		return nil
	})
}
