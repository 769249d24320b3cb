package toolchain

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// SourceExt is the NullScript file extension.
const SourceExt = ".ns"

// ListNSFiles returns a sorted list of every *.ns file under dir.
func ListNSFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Sorted for deterministic order.
	sort.Strings(files)
	return files, nil
}

// OutputPath maps an .ns file under srcDir onto its counterpart under
// outDir with the given extension (".ts" or ".js"), keeping the relative
// directory layout.
func OutputPath(srcDir, outDir, nsPath, ext string) (string, error) {
	rel, err := filepath.Rel(srcDir, nsPath)
	if err != nil {
		return "", fmt.Errorf("%s is not under %s: %w", nsPath, srcDir, err)
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("%s is not under %s", nsPath, srcDir)
	}
	rel = strings.TrimSuffix(rel, SourceExt) + ext
	return filepath.Join(outDir, rel), nil
}
