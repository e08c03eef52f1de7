package scan

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// probeResult holds one directory's direct children, files separated
// from subdirectories.
type probeResult struct {
	files   []FileRecord
	subdirs []string
}

// probe reads one directory's immediate entries exactly once. It does
// not recurse and applies no inclusion policy; hidden-entry and
// extension filtering belong to the coordinator. On failure to list
// the directory it returns an AccessError instead of aborting the scan.
func probe(dir string, followSymlinks bool) (probeResult, *AccessError) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return probeResult{}, newAccessError(dir, err)
	}

	var result probeResult

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		mode := entry.Type()
		if mode&fs.ModeSymlink != 0 {
			if !followSymlinks {
				continue
			}

			info, err := os.Stat(path)
			if err != nil {
				log.Debugf("skipping unresolvable symlink %s: %v", path, err)

				continue
			}

			if info.IsDir() {
				result.subdirs = append(result.subdirs, path)
			} else if info.Mode().IsRegular() {
				result.files = append(result.files, FileRecord{
					Path: path,
					Size: info.Size(),
					Ext:  strings.ToLower(filepath.Ext(entry.Name())),
				})
			}

			continue
		}

		if entry.IsDir() {
			result.subdirs = append(result.subdirs, path)

			continue
		}

		if !mode.IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			log.Debugf("skipping unreadable file %s: %v", path, err)

			continue
		}

		result.files = append(result.files, FileRecord{
			Path: path,
			Size: info.Size(),
			Ext:  strings.ToLower(filepath.Ext(entry.Name())),
		})
	}

	return result, nil
}
