// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// skippedDirs are never counted. magefiles is build tooling, not sllist code.
var skippedDirs = map[string]bool{
	".git":      true,
	"vendor":    true,
	"_examples": true,
	"magefiles": true,
	binaryDir:   true,
	"testdata":  true,
}

// lineStats counts Go source lines per kind and per top-level directory.
type lineStats struct {
	Prod  int            `json:"go_loc_prod"`
	Test  int            `json:"go_loc_test"`
	Total int            `json:"go_loc"`
	ByDir map[string]int `json:"go_loc_by_dir"`
}

// Stats prints Go lines of code as a JSON object.
func Stats() error {
	stats, err := countGoLines(".")
	if err != nil {
		return err
	}
	line, err := json.Marshal(stats)
	if err != nil {
		return err
	}
	fmt.Println(string(line))
	return nil
}

func countGoLines(root string) (lineStats, error) {
	stats := lineStats{ByDir: map[string]int{}}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if d.IsDir() {
			if rel != "." && skippedDirs[rel] {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") {
			return nil
		}

		count, err := countLines(path)
		if err != nil {
			return fmt.Errorf("counting %s: %w", path, err)
		}
		if strings.HasSuffix(path, "_test.go") {
			stats.Test += count
		} else {
			stats.Prod += count
		}

		top, _, _ := strings.Cut(filepath.ToSlash(rel), "/")
		if top == filepath.Base(rel) {
			top = "."
		}
		stats.ByDir[top] += count
		return nil
	})
	if err != nil {
		return lineStats{}, err
	}

	stats.Total = stats.Prod + stats.Test
	return stats, nil
}

func countLines(path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()

	count := 0
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		count++
	}
	return count, scanner.Err()
}
