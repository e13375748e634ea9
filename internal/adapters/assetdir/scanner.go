// Package assetdir provides the catalog sources a run can scan: a live asset
// directory tree or a pre-built listing file. Both yield the flat path list
// the catalog indexer consumes.
package assetdir

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// assetExt filters the directory walk to model files. Listing files are not
// filtered here; the catalog skips unusable lines itself.
const assetExt = ".glb"

// DirSource walks an asset root recursively and yields every .glb path
// relative to the root, sorted. Dot-directories are skipped; asset exports
// routinely carry .thumbnails and VCS litter.
type DirSource struct {
	Root string
}

// Paths walks the root. Unreadable entries are skipped, not errors; a missing
// root is an error.
func (s DirSource) Paths() ([]string, error) {
	absRoot, err := filepath.Abs(s.Root)
	if err != nil {
		return nil, err
	}
	if _, err := os.Stat(absRoot); err != nil {
		return nil, err
	}

	var paths []string
	err = filepath.Walk(absRoot, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil // skip unreadable
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != absRoot {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), assetExt) {
			return nil
		}
		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return nil
		}
		paths = append(paths, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(paths)
	return paths, nil
}

// ListSource reads a pre-built catalog listing: one path per line, blank
// lines and # comments ignored. Listings come from earlier exports or from
// machines where the asset tree itself is not mounted.
type ListSource struct {
	Path string
}

// Paths returns the listing's entries in file order.
func (s ListSource) Paths() ([]string, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var paths []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		paths = append(paths, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return paths, nil
}
