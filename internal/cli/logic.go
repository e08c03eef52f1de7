package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	log "github.com/sirupsen/logrus"

	"github.com/dirscope/dirscope/internal/classify"
	"github.com/dirscope/dirscope/internal/report"
	"github.com/dirscope/dirscope/internal/scan"
)

// run translates flag values into scan options, runs the scan, and
// writes the terminal summary plus the optional result and error-log
// files.
func run(opt options, minSize int64) error {
	var overrides map[string]classify.Category

	if opt.categoriesFile != "" {
		var err error

		overrides, err = classify.LoadOverrides(opt.categoriesFile)
		if err != nil {
			return err
		}
	}

	scanOpt := scan.Options{
		Root:           opt.path,
		IncludeHidden:  !opt.noHidden,
		FollowSymlinks: opt.followSymlinks,
		MinSize:        minSize,
		Extensions:     opt.extensions,
		Overrides:      overrides,
		Workers:        opt.workers,
		Sequential:     opt.sequential,
		ErrorSink: func(path string, err *scan.AccessError) {
			log.Debugf("no access to %s: %v", path, err.Err)
		},
	}

	// Ctrl-C degrades to a partial, clearly-marked report.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	enableProgress := !opt.verbose && isatty.IsTerminal(os.Stderr.Fd())

	var progressHook scan.ProgressFunc

	if enableProgress {
		var total int64
		if estimated, err := scan.EstimateDirectories(ctx, opt.path); err == nil {
			total = estimated
		}

		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(os.Stderr, "\033[?25l")
		defer fmt.Fprint(os.Stderr, "\033[?25h")

		progressHook = func(dirs, files, bytes int64) {
			msg := fmt.Sprintf("Scanning… %d/%d directories, %d files, %s",
				dirs, total, files, humanize.IBytes(uint64(bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(os.Stderr, "\r\033[2K%s\r", msg)
		}
	}

	coordinator := scan.NewCoordinator(scanOpt)

	rep, err := coordinator.Run(ctx, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(os.Stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if err := report.WriteText(os.Stdout, rep, opt.topN); err != nil {
		return err
	}

	if opt.outputFile != "" {
		if err := writeResultFile(opt.outputFile, opt.format, rep); err != nil {
			return err
		}

		fmt.Printf("\nFull results written to: %s\n", opt.outputFile)
	}

	if opt.errorLog != "" && len(rep.Inaccessible) > 0 {
		if err := report.WriteErrorLog(opt.errorLog, rep.Inaccessible); err != nil {
			log.Warnf("failed to write error log: %v", err)
		} else {
			fmt.Printf("Inaccessible directories logged to: %s\n", opt.errorLog)
		}
	}

	return nil
}

// writeResultFile writes the full report to path in the chosen format.
func writeResultFile(path, format string, rep *scan.Report) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "json":
		return report.WriteJSON(f, rep)
	case "csv":
		return report.WriteCSV(f, rep)
	default:
		return report.WriteText(f, rep, len(rep.Filtered))
	}
}
