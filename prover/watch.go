package prover

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// settleDelay lets an editor finish writing before the script is re-read.
const settleDelay = 100 * time.Millisecond

// Watch re-checks a script whenever it is written and passes the result to
// report. Directories in paths are watched recursively; files are watched
// through their parent directory. Watch blocks until ctx is done.
func Watch(
	ctx context.Context,
	logger *zap.Logger,
	config Config,
	paths []string,
	report func(ScriptResult),
) error {
	if logger == nil {
		logger = zap.NewNop()
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("error creating watcher: %w", err)
	}
	defer watcher.Close()

	for _, path := range paths {
		if err := addWatch(watcher, path); err != nil {
			return err
		}
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isScriptWrite(event) {
				continue
			}
			if !settle(ctx, settleDelay) {
				return nil
			}

			logger.Debug("script changed", zap.String("file", event.Name))
			report(CheckFile(ctx, logger, config, event.Name))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watch error", zap.Error(err))
		}
	}
}

// settle waits for d and reports false when ctx is done first.
func settle(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}

func addWatch(watcher *fsnotify.Watcher, path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error accessing %s: %w", path, err)
	}
	if !info.IsDir() {
		path = filepath.Dir(path)
		return watcher.Add(path)
	}

	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(p)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}
	return nil
}

func isScriptWrite(event fsnotify.Event) bool {
	return (event.Has(fsnotify.Write) || event.Has(fsnotify.Create)) && IsScript(event.Name)
}
