// Package cli provides the command-line interface for git-whatdo.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/runoshun/git-whatdo/internal/app"
)

// Command group IDs.
const (
	groupSetup    = "setup"
	groupTask     = "task"
	groupWorkflow = "workflow"
)

// NewRootCommand creates the root command for git-whatdo.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "wd",
		Short: "Git-based whatdo tracking",
		Long: `wd is a streamlined git-based tool for tracking the work of a project.

Whatdos live in a WHATDO.yaml file at the repository root, versioned with
the code they describe. Starting a whatdo checks out a branch named after
it; finishing merges the branch back and removes the whatdo.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
		&cobra.Group{ID: groupTask, Title: "Whatdo Management:"},
		&cobra.Group{ID: groupWorkflow, Title: "Workflow:"},
	)

	initCmd := newInitCommand(c)
	initCmd.GroupID = groupSetup

	addCmd := newAddCommand(c)
	addCmd.GroupID = groupTask

	showCmd := newShowCommand(c)
	showCmd.GroupID = groupTask

	lsCmd := newLsCommand(c)
	lsCmd.GroupID = groupTask

	rmCmd := newRmCommand(c)
	rmCmd.GroupID = groupTask

	queueCmd := newQueueCommand(c)
	queueCmd.GroupID = groupTask

	statusCmd := newStatusCommand(c)
	statusCmd.GroupID = groupWorkflow

	nextCmd := newNextCommand(c)
	nextCmd.GroupID = groupWorkflow

	startCmd := newStartCommand(c)
	startCmd.GroupID = groupWorkflow

	resolveCmd := newResolveCommand(c)
	resolveCmd.GroupID = groupWorkflow

	finishCmd := newFinishCommand(c)
	finishCmd.GroupID = groupWorkflow

	root.AddCommand(
		initCmd,
		addCmd,
		showCmd,
		lsCmd,
		rmCmd,
		queueCmd,
		statusCmd,
		nextCmd,
		startCmd,
		resolveCmd,
		finishCmd,
	)

	return root
}
