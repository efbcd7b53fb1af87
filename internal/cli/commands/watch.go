package commands

import (
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// watchDebounce coalesces editor save bursts into one re-run.
const watchDebounce = 100 * time.Millisecond

// runWatch runs the check once, then re-runs it whenever a watched file
// changes. Violations never stop the loop; only a broken watcher or an
// interrupt does.
func runWatch(cmd *cobra.Command, cmdCtx *CommandContext, opts *CheckOptions) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	runOnce := func() {
		err := runCheckOnce(cmd, cmdCtx, opts)
		switch {
		case err == nil:
		case IsViolationsFound(err):
			// Findings are the loop's normal output
		default:
			cmdCtx.Renderer.Error(err.Error())
		}
	}

	runOnce()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	roots := opts.Paths
	if len(roots) == 0 {
		roots = []string{cmdCtx.Cfg.ProjectRoot}
	}
	for _, root := range roots {
		if err := watchDirRecursive(watcher, root); err != nil {
			cmdCtx.Logger.Error("failed to watch path", "path", root, "error", err)
			// Don't fail - continue with whatever was added
		}
	}

	cmdCtx.Renderer.Println(cmdCtx.Renderer.Styles().Muted.Render("Watching for changes... (Ctrl-C to stop)"))

	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}

			// New directories need to join the watch
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					_ = watchDirRecursive(watcher, event.Name)
					continue
				}
			}

			if !slices.Contains(cmdCtx.Cfg.Extensions, filepath.Ext(event.Name)) && filepath.Ext(event.Name) != ".star" {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(watchDebounce, func() {
				cmdCtx.Logger.Debug("file changed, re-checking", "file", event.Name)
				runOnce()
			})

		case err := <-watcher.Errors:
			cmdCtx.Logger.Error("watcher error", "error", err)
		}
	}
}

// watchDirRecursive adds a directory and all subdirectories to the
// watcher. Hidden directories are skipped, matching the file walk.
func watchDirRecursive(watcher *fsnotify.Watcher, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return watcher.Add(filepath.Dir(dir))
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if name := d.Name(); name != "." && len(name) > 1 && name[0] == '.' {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}
