// Package watch implements the supplemental "watch" command: a
// long-lived process that reacts to working-tree changes relative to
// head as they happen. Unlike every other command in this module, it
// does not load-once/save-once (§5's ordering rule is for the
// one-shot commands); it re-derives status on each debounced
// filesystem event, re-stages any tracked file it finds modified (by
// calling the same Add operation the "add" command uses), and prints
// a status summary reflecting that.
package watch

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"gitlet/pkg/repo"
)

const debounceDelay = 300 * time.Millisecond

// Run watches r's working directory until ctx is canceled, printing a
// status summary to out each time the debounce window settles after a
// filesystem event.
func Run(ctx context.Context, r *repo.Repo, out io.Writer) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(r.RootDir); err != nil {
		return fmt.Errorf("watch: add %s: %w", r.RootDir, err)
	}

	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if shouldIgnore(ev.Name, r.GitletDir) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDelay, func() {
				select {
				case fire <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(out, "watch: error: %v\n", err)
		case <-fire:
			if err := reportStatus(r, out); err != nil {
				fmt.Fprintf(out, "watch: status: %v\n", err)
			}
		}
	}
}

// reportStatus re-stages every tracked file the status report finds
// modified on disk (never deleted ones, which must go through "rm"),
// persists the resulting Management state, then prints a summary.
func reportStatus(r *repo.Repo, out io.Writer) error {
	m, err := r.LoadManagement()
	if err != nil {
		return err
	}
	st, err := repo.BuildStatus(r, m)
	if err != nil {
		return err
	}

	autoAdded := 0
	for _, entry := range st.ModifiedNotStaged {
		if entry.Kind != "modified" {
			continue
		}
		if err := repo.Add(r, m, entry.Path); err != nil {
			return fmt.Errorf("watch: auto-add %s: %w", entry.Path, err)
		}
		autoAdded++
	}
	if autoAdded > 0 {
		if err := r.SaveManagement(m); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		st, err = repo.BuildStatus(r, m)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "[%s] %d auto-added, %d staged, %d removed, %d untracked\n",
		time.Now().Format("15:04:05"),
		autoAdded, len(st.Staged), len(st.Removed), len(st.Untracked))
	return nil
}

func shouldIgnore(name, gitletDir string) bool {
	rel, err := filepath.Rel(gitletDir, name)
	if err != nil {
		return false
	}
	return rel == "." || (!strings.HasPrefix(rel, "..") && rel != "")
}
