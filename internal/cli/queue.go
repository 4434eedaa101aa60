package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-whatdo/internal/app"
	"github.com/runoshun/git-whatdo/internal/usecase"
)

// newQueueCommand creates the queue command and its subcommands.
func newQueueCommand(c *app.Container) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "queue",
		Short: "Show or edit the pinned work order",
		Long: `The queue pins whatdos (or whole subtrees) to the front of the selection
order. Without a subcommand the current queue is printed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runQueue(cmd, c, usecase.EditQueueInput{Action: usecase.QueueList})
		},
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "push <id>",
			Short: "Append a whatdo to the queue",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runQueue(cmd, c, usecase.EditQueueInput{Action: usecase.QueuePush, ID: args[0]})
			},
		},
		&cobra.Command{
			Use:   "pop",
			Short: "Remove the front of the queue",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runQueue(cmd, c, usecase.EditQueueInput{Action: usecase.QueuePop})
			},
		},
		&cobra.Command{
			Use:   "clear",
			Short: "Empty the queue",
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runQueue(cmd, c, usecase.EditQueueInput{Action: usecase.QueueClear})
			},
		},
	)

	return cmd
}

func runQueue(cmd *cobra.Command, c *app.Container, in usecase.EditQueueInput) error {
	out, err := c.EditQueueUseCase().Execute(cmd.Context(), in)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if in.Action == usecase.QueuePop {
		_, _ = fmt.Fprintf(w, "Popped %s\n", out.Popped)
	}
	if len(out.Queue) == 0 {
		_, _ = fmt.Fprintln(w, "Queue is empty")
		return nil
	}
	for i, id := range out.Queue {
		_, _ = fmt.Fprintf(w, "%d. %s\n", i+1, idStyle.Render(id))
	}
	return nil
}
