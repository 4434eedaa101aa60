// Package main is the entry point for the wd CLI.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/runoshun/git-whatdo/internal/app"
	"github.com/runoshun/git-whatdo/internal/cli"
	"github.com/runoshun/git-whatdo/internal/domain"
)

// version is set at build time using -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

func run() error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	container, err := app.New(cwd)
	if err != nil {
		if errors.Is(err, domain.ErrNotGitRepository) && canRunWithoutGit(os.Args[1:]) {
			return cli.NewRootCommand(nil, version).Execute()
		}
		return err
	}

	return cli.NewRootCommand(container, version).Execute()
}

// exitCode maps environment failures to 2 and everything else to 1.
func exitCode(err error) int {
	if errors.Is(err, domain.ErrVCS) || errors.Is(err, domain.ErrNotGitRepository) {
		return 2
	}
	return 1
}

// canRunWithoutGit reports whether the invocation only needs help or
// version output.
func canRunWithoutGit(args []string) bool {
	if len(args) > 0 && args[0] == "help" {
		return true
	}
	for _, arg := range args {
		if arg == "--version" || arg == "-v" || arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}
