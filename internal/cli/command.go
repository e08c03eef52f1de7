// Package cli wires the command-line surface to the scan engine.
package cli

import (
	"errors"
	"fmt"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/dustin/go-humanize"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// options collects all flag values before they are translated into
// scan options.
type options struct {
	path           string
	outputFile     string
	format         string
	topN           int
	noHidden       bool
	followSymlinks bool
	minSizeStr     string
	extensions     []string
	categoriesFile string
	errorLog       string
	workers        int
	sequential     bool
	verbose        bool
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	var opt options

	allowedFormats := []string{"text", "csv", "json"}

	cmd := &cobra.Command{
		Use:     "dirscope [flags] [path]",
		Short:   "Find the largest directories by direct file size",
		Version: c.version,
		Long: heredoc.Doc(`
			dirscope scans a directory tree and reports which directories hold the
			most data, counting only files directly inside each directory (never
			subdirectory contents), with a content-type breakdown by extension.

			Inaccessible directories are recorded and skipped; the scan never
			aborts for a single denied directory.

			Defaults to the current directory if no path is given.
		`),
		Example: heredoc.Doc(`
			# Scan the home directory, show the 20 largest
			dirscope -t 20 ~

			# Only count PDFs and EPUBs, write full results as CSV
			dirscope -x .pdf,.epub --format csv -o books.csv ~/library

			# Reclassify extensions with a category override file
			dirscope --categories overrides.yaml /data
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			if !slices.Contains(allowedFormats, opt.format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opt.format, allowedFormats)
			}

			if opt.topN <= 0 {
				return errors.New("top count must be positive")
			}

			if len(args) == 0 {
				opt.path = "."
			} else {
				opt.path = args[0]
			}

			if opt.verbose {
				log.SetLevel(log.DebugLevel)
			}

			minSize, err := humanize.ParseBytes(opt.minSizeStr)
			if err != nil {
				return fmt.Errorf("invalid min-size: %w", err)
			}

			return run(opt, int64(minSize)) //nolint:gosec // Size conversion from humanize is safe
		},
	}

	flags := cmd.Flags()
	flags.SortFlags = false

	flags.StringVarP(&opt.outputFile, "output-file", "o", "largest_directories.txt",
		"File for full results (empty to skip)")
	flags.StringVar(&opt.format, "format", "text", "Output file format: text, csv or json")
	flags.IntVarP(&opt.topN, "top", "t", 50, "Number of top directories to display")
	flags.BoolVar(&opt.noHidden, "no-hidden", false, "Exclude hidden files and directories")
	flags.BoolVar(&opt.followSymlinks, "follow-symlinks", false, "Follow symbolic links (cycles are detected)")
	flags.StringVar(&opt.minSizeStr, "min-size", "0B", "Minimum directory size for the report (e.g. 10MB)")
	flags.StringSliceVarP(&opt.extensions, "ext", "x", nil,
		"Only count files with these extensions (e.g. .pdf,.txt)")
	flags.StringVar(&opt.categoriesFile, "categories", "", "YAML file with extension category overrides")
	flags.StringVar(&opt.errorLog, "no-access-log", "no-access.txt",
		"File to log inaccessible directories (empty to skip)")
	flags.IntVarP(&opt.workers, "workers", "w", 0, "Worker pool size (0 = default)")
	flags.BoolVar(&opt.sequential, "sequential", false, "Scan single-threaded")
	flags.BoolVarP(&opt.verbose, "verbose", "v", false, "Enable verbose output")

	return cmd.Execute()
}
