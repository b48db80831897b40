// Package resolver turns the user-supplied path into the concrete list of
// files the pipeline should process.
package resolver

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Sentinel errors for path validation. These invalidate the whole run and
// are reported before any file is touched.
var (
	ErrPathNotFound      = errors.New("path does not exist")
	ErrNotMarkdown       = errors.New("not a markdown file")
	ErrDirNeedsRecursive = errors.New("path is a directory, use --recursive to process it")
)

// Mode records how a target was discovered; the pipeline uses it to pick
// the destination policy.
type Mode int

const (
	// SingleFile is a target named directly on the command line.
	SingleFile Mode = iota
	// RecursiveMember is a target found by directory traversal.
	RecursiveMember
)

// FileTarget is one resolved file to process.
type FileTarget struct {
	Path string
	Mode Mode
}

// Resolve expands path into the list of targets.
//
// A regular file yields exactly one SingleFile target regardless of the
// recursive flag, provided its extension is in extensions. A directory
// requires recursive mode and yields one RecursiveMember target per
// matching file under the tree, sorted by path so output is reproducible
// for a given filesystem listing.
func Resolve(path string, recursive bool, extensions []string) ([]FileTarget, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}

	if !info.IsDir() {
		if !hasExtension(path, extensions) {
			return nil, fmt.Errorf("%w: %s", ErrNotMarkdown, path)
		}
		return []FileTarget{{Path: path, Mode: SingleFile}}, nil
	}

	if !recursive {
		return nil, fmt.Errorf("%w: %s", ErrDirNeedsRecursive, path)
	}

	var targets []FileTarget
	err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && hasExtension(p, extensions) {
			targets = append(targets, FileTarget{Path: p, Mode: RecursiveMember})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", path, err)
	}

	sort.Slice(targets, func(i, j int) bool { return targets[i].Path < targets[j].Path })
	return targets, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}
