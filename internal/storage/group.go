package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// GroupFrames moves the extractor's flat out_00000001.png dump into
// part1/1.png, part2/1001.png, ... folders of groupSize frames each.
// Returns the number of frames moved.
func GroupFrames(flatDir, destDir string, groupSize int) (int, error) {
	if groupSize < 1 {
		return 0, fmt.Errorf("group size must be positive, got %d", groupSize)
	}
	entries, err := os.ReadDir(flatDir)
	if err != nil {
		return 0, fmt.Errorf("reading extracted frames dir %s: %w", flatDir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), "out_") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return 0, fmt.Errorf("no frames extracted into %s", flatDir)
	}
	sort.Strings(names) // zero padded, lexicographic is frame order

	for i, name := range names {
		part := i/groupSize + 1
		partDir := filepath.Join(destDir, fmt.Sprintf("part%d", part))
		if i%groupSize == 0 {
			if err := os.MkdirAll(partDir, os.ModePerm); err != nil {
				return 0, fmt.Errorf("creating %s: %w", partDir, err)
			}
		}
		dst := filepath.Join(partDir, fmt.Sprintf("%d%s", i+1, filepath.Ext(name)))
		if err := os.Rename(filepath.Join(flatDir, name), dst); err != nil {
			return 0, fmt.Errorf("moving frame %s: %w", name, err)
		}
	}
	return len(names), nil
}
