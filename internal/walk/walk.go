// Package walk resolves the command line's file and directory arguments
// into a flat, ordered list of files to scan.
package walk

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// File is one file queued for scanning, together with the label it should
// be printed under when a match is reported.
type File struct {
	// Path is the path to open for reading.
	Path string
	// Label is the path to prefix matching lines with; it uses forward
	// slashes regardless of host OS and is relative to the root it was
	// discovered under when found via recursive descent.
	Label string
}

// Resolve expands the given roots into a list of files to scan. A root that
// is a plain file becomes one File labeled with the root itself. A root
// that is a directory requires recursive to be true, and is walked in
// lexical order; each file under it is labeled with its path relative to
// the root, joined with forward slashes.
func Resolve(fs afero.Fs, roots []string, recursive bool) ([]File, error) {
	var files []File
	for _, root := range roots {
		info, err := fs.Stat(root)
		if err != nil {
			return nil, errors.Wrapf(err, "stat %s", root)
		}
		if !info.IsDir() {
			files = append(files, File{Path: root, Label: root})
			continue
		}
		if !recursive {
			return nil, errors.Errorf("%s is a directory (use -r to search directories)", root)
		}
		found, err := walkDir(fs, root)
		if err != nil {
			return nil, err
		}
		files = append(files, found...)
	}
	return files, nil
}

func walkDir(fs afero.Fs, root string) ([]File, error) {
	var found []File
	err := afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		found = append(found, File{Path: path, Label: filepath.ToSlash(rel)})
		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "walk %s", root)
	}
	sort.Slice(found, func(i, j int) bool { return found[i].Label < found[j].Label })
	return found, nil
}
