package prover

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// CheckOptions configure CheckPaths.
type CheckOptions struct {
	// Progress draws a progress bar on ProgressOut.
	Progress    bool
	ProgressOut io.Writer
}

// CollectScripts expands paths into the script files they contain.
// Directories are walked recursively; files given directly are used
// whatever their extension. The result is sorted and free of duplicates.
func CollectScripts(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	var files []string
	add := func(path string) {
		if !seen[path] {
			seen[path] = true
			files = append(files, path)
		}
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("error accessing %s: %w", path, err)
		}
		if !info.IsDir() {
			add(path)
			continue
		}

		err = filepath.WalkDir(path, func(filePath string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.IsDir() && IsScript(filePath) {
				add(filePath)
			}
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("error walking directory %s: %w", path, err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// IsScript reports whether path names a proof script.
func IsScript(path string) bool {
	return strings.HasSuffix(path, ScriptExtension)
}

// CheckPaths replays every script under paths with at most
// config.WorkerCount() scripts running at once. Results keep the order of
// CollectScripts. A failing script does not stop the others; the error is
// only set for unreadable paths or a cancelled context.
func CheckPaths(
	ctx context.Context,
	logger *zap.Logger,
	config Config,
	paths []string,
	opts CheckOptions,
) ([]ScriptResult, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	files, err := CollectScripts(paths)
	if err != nil {
		return nil, err
	}

	var bar *progressbar.ProgressBar
	if opts.Progress {
		out := opts.ProgressOut
		if out == nil {
			out = os.Stderr
		}
		bar = progressbar.NewOptions(len(files),
			progressbar.OptionSetWriter(out),
			progressbar.OptionSetDescription("checking proofs"),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))
	}

	results := make([]ScriptResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(config.WorkerCount())
	for i, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			result := CheckFile(gctx, logger, config, file)
			if result.Passed {
				logger.Info("proof checked", zap.String("file", file))
			} else {
				logger.Warn("proof failed", zap.String("file", file), zap.String("reason", result.Error))
			}
			results[i] = result

			if bar != nil {
				_ = bar.Add(1)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if bar != nil {
		_ = bar.Finish()
	}
	return results, nil
}

// Failed counts the results that did not pass.
func Failed(results []ScriptResult) int {
	n := 0
	for _, r := range results {
		if !r.Passed {
			n++
		}
	}
	return n
}
