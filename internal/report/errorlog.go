package report

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/dirscope/dirscope/internal/scan"
)

// WriteErrorLog writes the inaccessible-directory list to path, one
// entry per line with the failure kind.
func WriteErrorLog(path string, inaccessible []scan.AccessError) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating error log %q: %w", path, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)

	fmt.Fprintln(w, "# dirscope - inaccessible directories")
	fmt.Fprintf(w, "# Generated: %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "# Total inaccessible directories: %d\n\n", len(inaccessible))

	for _, access := range inaccessible {
		fmt.Fprintf(w, "%s\t%s\n", access.Path, access.Kind)
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("writing error log %q: %w", path, err)
	}

	return nil
}
