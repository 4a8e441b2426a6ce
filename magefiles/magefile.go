// Package main provides build targets for the prototypes project using Mage.
//
// Usage:
//
//	mage build          Compile the prototypes binary to bin/
//	mage test:all       Run all tests
//	mage test:unit      Run only unit tests (exclude tests/)
//	mage test:integration Build, then run the binary-level tests
//	mage test:cover     Run all tests and write coverage.out
//	mage test:verify    Build, then cross-check Go and SQL query results
//	mage vet            Run go vet
//	mage lint           Run go vet, then golangci-lint
//	mage clean          Remove build artifacts
//	mage install        Install prototypes to GOPATH/bin
//	mage stats          Print Go LOC and fixture record counts as JSON
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo       = "go"
	binaryName  = "prototypes"
	binaryDir   = "bin"
	cmdDir      = "./cmd/prototypes"
	versionFlag = "github.com/mesh-intelligence/prototypes/internal/cli.Version"
)

// ldflags stamps VERSION from the environment into the binary when set.
func ldflags() string {
	if v := os.Getenv("VERSION"); v != "" {
		return "-X " + versionFlag + "=" + v
	}
	return ""
}

// Build compiles the prototypes binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-ldflags", ldflags(), "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	for _, p := range []string{binaryDir, coverProfile} {
		if err := os.RemoveAll(p); err != nil {
			return err
		}
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
