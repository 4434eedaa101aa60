package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-whatdo/internal/app"
	"github.com/runoshun/git-whatdo/internal/usecase"
)

// newStatusCommand creates the status command.
func newStatusCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active whatdo and what comes next",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStatus(cmd, c)
		},
	}
}

// runStatus renders the status summary. It also backs the bare 'wd' command.
func runStatus(cmd *cobra.Command, c *app.Container) error {
	uc := c.StatusUseCase()
	out, err := uc.Execute(cmd.Context(), usecase.StatusInput{})
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if out.Summary != "" {
		_, _ = fmt.Fprintf(w, "%s\n\n", out.Summary)
	}

	if out.Active != nil {
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", activeStyle.Render("On"), idStyle.Render(out.Active.ID), out.Active.Summary)
	} else {
		_, _ = fmt.Fprintln(w, "Idle, nothing active")
	}
	_, _ = fmt.Fprintf(w, "Branch: %s", out.CurrentBranch)
	if out.Dirty {
		_, _ = fmt.Fprintf(w, " %s", queuedStyle.Render("(uncommitted changes)"))
	}
	_, _ = fmt.Fprintln(w)

	if len(out.Next) > 0 {
		_, _ = fmt.Fprintln(w, "\nUp next:")
		printCandidates(cmd, out.Next, "")
	} else if out.Active == nil {
		_, _ = fmt.Fprintln(w, "\nNothing to do")
	}
	return nil
}
