// Package storage is the fs layer: frame listing, part-folder discovery,
// output path handling and atomic level saves.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".bmp":  true,
}

var partRe = regexp.MustCompile(`^part\d+$`)

// Part is one group of frames produced by the extractor, e.g. "part3".
type Part struct {
	Name  string
	Files []string
}

// ListFrames returns the image files of a directory in natural order, so
// 2.png sorts before 10.png.
func ListFrames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading frames dir %s: %w", dir, err)
	}
	files := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if imageExts[strings.ToLower(filepath.Ext(e.Name()))] {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no frame images in %s", dir)
	}
	sort.Slice(files, func(i, j int) bool { return NaturalLess(files[i], files[j]) })
	return files, nil
}

// ListParts finds part1, part2, ... subfolders with frames in them,
// naturally sorted.
func ListParts(dir string) ([]Part, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading parts dir %s: %w", dir, err)
	}
	var parts []Part
	for _, e := range entries {
		if !e.IsDir() || !partRe.MatchString(strings.ToLower(e.Name())) {
			continue
		}
		files, err := ListFrames(filepath.Join(dir, e.Name()))
		if err != nil {
			continue // empty part folders are skipped, not fatal
		}
		parts = append(parts, Part{Name: e.Name(), Files: files})
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no part folders with frames in %s", dir)
	}
	sort.Slice(parts, func(i, j int) bool { return NaturalLess(parts[i].Name, parts[j].Name) })
	return parts, nil
}

// NaturalLess compares strings treating digit runs as numbers.
func NaturalLess(a, b string) bool {
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			na, ra := chompInt(a)
			nb, rb := chompInt(b)
			if na != nb {
				return na < nb
			}
			a, b = ra, rb
			continue
		}
		ca, cb := lower(a[0]), lower(b[0])
		if ca != cb {
			return ca < cb
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool { return '0' <= c && c <= '9' }

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}

func chompInt(s string) (int64, string) {
	i := 0
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	var n int64
	for _, c := range []byte(s[:i]) {
		n = n*10 + int64(c-'0')
	}
	return n, s[i:]
}

// ResolveOutput returns out unchanged unless it is empty, in which case the
// level lands next to the input with its basename and the level extension.
func ResolveOutput(out, input, ext string) string {
	if out != "" {
		return out
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
	return filepath.Join(filepath.Dir(input), base+ext)
}

// WriteLevel streams a document into a temp file next to the destination and
// renames it into place, so a failed job never leaves a truncated level.
func WriteLevel(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("creating output dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, ".level-*")
	if err != nil {
		return fmt.Errorf("creating temp file in %s: %w", dir, err)
	}
	if err := write(tmp); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("syncing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("saving level %s: %w", path, err)
	}
	return nil
}
