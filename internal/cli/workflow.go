package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-whatdo/internal/app"
	"github.com/runoshun/git-whatdo/internal/domain"
	"github.com/runoshun/git-whatdo/internal/tui/picker"
	"github.com/runoshun/git-whatdo/internal/usecase"
)

// newStartCommand creates the start command for binding a whatdo to a branch.
func newStartCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "start [id]",
		Short: "Start a whatdo by checking out a branch named after it",
		Long: `Start a whatdo: create and check out a branch named after its id, mark it
active, and push the branch upstream.

Without an id an interactive picker is shown, ordered the same way 'wd ls'
orders its output.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) > 0 {
				id = args[0]
			} else {
				var err error
				id, err = pickTask(cmd, c)
				if err != nil || id == "" {
					return err
				}
			}

			uc := c.StartTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.StartTaskInput{ID: id})
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Starting %s on branch %s\n", out.Task.ID, out.Branch)
			if out.PushWarning != nil {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: branch not pushed: %v\n", out.PushWarning)
			}
			return nil
		},
	}
}

// pickTask shows the interactive picker over the current selection order.
func pickTask(cmd *cobra.Command, c *app.Container) (string, error) {
	out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{})
	if err != nil {
		return "", err
	}
	if len(out.Candidates) == 0 {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing to do")
		return "", nil
	}
	return picker.Run(out.Candidates)
}

// newResolveCommand creates the resolve command.
func newResolveCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Merge  bool
		Push   bool
		Finish bool
	}

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Merge/push the active whatdo's branch without ending it",
		Long: `Resolve the active whatdo: optionally merge its branch into the default
branch and push. The whatdo stays active; use --finish (or 'wd finish') to
end it.

A merge conflict aborts with git's own conflict state left in place for you
to resolve; the whatdo remains active and resolve can be re-run afterwards.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ResolveTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ResolveTaskInput{
				Merge:  opts.Merge,
				Push:   opts.Push,
				Finish: opts.Finish,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Merged {
				_, _ = fmt.Fprintf(w, "Merged %s\n", out.Branch)
			}
			if out.Pushed {
				_, _ = fmt.Fprintf(w, "Pushed %s\n", out.Branch)
			}
			if out.Finished != nil {
				_, _ = fmt.Fprintf(w, "Finished %s\n", out.Task.ID)
				_, _ = fmt.Fprintln(w, "Well done!")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Merge, "merge", false, "Merge the branch into the default branch")
	cmd.Flags().BoolVar(&opts.Push, "push", false, "Push the branch (and the default branch if merged)")
	cmd.Flags().BoolVar(&opts.Finish, "finish", false, "Finish the whatdo after resolving")

	return cmd
}

// newFinishCommand creates the finish command.
func newFinishCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "finish [id]",
		Short: "Finish a whatdo: remove it, merge its branch and clean up",
		Long: `Finish a whatdo (default: the active one): remove it from WHATDO.yaml,
commit and push the removal, merge the work branch into the default branch,
push, and delete the branch.

If the merge conflicts, the removal is already committed on the work branch;
resolve the conflict with git, then re-run 'wd finish' to redo only the
remaining merge and cleanup steps.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := ""
			if len(args) > 0 {
				id = args[0]
			}

			uc := c.FinishTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.FinishTaskInput{ID: id})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out.Resumed {
				_, _ = fmt.Fprintf(w, "Resumed finishing %s\n", out.Branch)
			}
			if out.Task != nil {
				_, _ = fmt.Fprintf(w, "Finished %s: %s\n", out.Task.ID, out.Task.Summary)
			} else {
				_, _ = fmt.Fprintf(w, "Finished %s\n", out.Branch)
			}
			_, _ = fmt.Fprintln(w, "Congratulations!")
			return nil
		},
	}
}

// newNextCommand creates the next command.
func newNextCommand(c *app.Container) *cobra.Command {
	var opts filterOpts
	var start bool

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the next whatdo to work on",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.NextTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.NextTaskInput{Filter: opts.filter(cmd)})
			if err != nil {
				return err
			}
			if out.Candidate == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing to do")
				return nil
			}

			if start {
				startOut, err := c.StartTaskUseCase().Execute(cmd.Context(), usecase.StartTaskInput{ID: out.Candidate.Task.ID})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Starting %s on branch %s\n", startOut.Task.ID, startOut.Branch)
				if startOut.PushWarning != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: branch not pushed: %v\n", startOut.PushWarning)
				}
				return nil
			}

			printCandidates(cmd, []domain.Candidate{*out.Candidate}, "")
			return nil
		},
	}

	opts.register(cmd)
	cmd.Flags().BoolVar(&start, "start", false, "Automatically start the whatdo")
	return cmd
}
