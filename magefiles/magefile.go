// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the sllist project using Mage.
//
// Usage:
//
//	mage build          Compile sllist binary to bin/
//	mage test:all       Run all tests
//	mage test:race      Run all tests with the race detector
//	mage test:cover     Run tests and write coverage.out
//	mage lint           Run golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install sllist to GOPATH/bin
//	mage stats          Print Go line counts as JSON
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binGit     = "git"
	binaryName = "sllist"
	binaryDir  = "bin"
	cmdDir     = "./cmd/sllist"
	buildPkg   = "github.com/mesh-intelligence/sllist/internal/build"
)

// ldflags stamps the commit hash into internal/build. Outside a git
// checkout the default "none" is kept.
func ldflags() string {
	commit, err := sh.Output(binGit, "rev-parse", "--short", "HEAD")
	if err != nil || strings.TrimSpace(commit) == "" {
		return ""
	}
	return fmt.Sprintf("-X %s.Commit=%s", buildPkg, strings.TrimSpace(commit))
}

// Build compiles the sllist binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	if err := os.RemoveAll(coverProfile); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	src := filepath.Join(binaryDir, binaryName)
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, src)
}
