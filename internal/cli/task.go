package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/runoshun/git-whatdo/internal/app"
	"github.com/runoshun/git-whatdo/internal/domain"
	"github.com/runoshun/git-whatdo/internal/usecase"
)

var (
	idStyle     = lipgloss.NewStyle().Bold(true)
	queuedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212"))
	tagStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
)

// newAddCommand creates the add command for creating whatdos.
func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Summary     string
		Description string
		Parent      string
		Tags        []string
		Priority    int
		Queue       bool
	}

	cmd := &cobra.Command{
		Use:   "add <id>",
		Short: "Add a new whatdo",
		Long: `Add a new whatdo to WHATDO.yaml.

The id doubles as the branch name when the whatdo is started, so it must be
a valid git branch name.

Examples:
  # A root-level whatdo
  wd add fix-auth -m "Fix the authentication timeout"

  # A sub-whatdo with tags and a priority (lower = more urgent)
  wd add oauth-flow --parent fix-auth -m "Implement the OAuth flow" -t backend -p 1

  # Add and pin to the front of the work order
  wd add hotfix -m "Patch the release" --queue`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := usecase.AddTaskInput{
				ID:          args[0],
				Summary:     opts.Summary,
				Description: opts.Description,
				Parent:      opts.Parent,
				Tags:        opts.Tags,
				Queue:       opts.Queue,
			}
			if cmd.Flags().Changed("priority") {
				input.Priority = &opts.Priority
			}

			uc := c.AddTaskUseCase()
			out, err := uc.Execute(cmd.Context(), input)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", out.Task.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Summary, "summary", "m", "", "One-line summary (required)")
	cmd.Flags().StringVarP(&opts.Description, "description", "d", "", "Longer description")
	cmd.Flags().StringVar(&opts.Parent, "parent", "", "Parent whatdo id")
	cmd.Flags().StringArrayVarP(&opts.Tags, "tag", "t", nil, "Tags (can specify multiple)")
	cmd.Flags().IntVarP(&opts.Priority, "priority", "p", 0, "Priority, lower = more urgent")
	cmd.Flags().BoolVar(&opts.Queue, "queue", false, "Also append to the queue")
	_ = cmd.MarkFlagRequired("summary")

	return cmd
}

// newShowCommand creates the show command for displaying a whatdo.
func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a whatdo",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.ShowTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ShowTaskInput{ID: args[0]})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(w, "%s: %s\n", idStyle.Render(out.Task.ID), out.Task.Summary)
			if out.Active {
				_, _ = fmt.Fprintf(w, "  %s\n", activeStyle.Render("active"))
			}
			if out.Queued {
				_, _ = fmt.Fprintf(w, "  %s\n", queuedStyle.Render("queued"))
			}
			if out.Priority != nil {
				_, _ = fmt.Fprintf(w, "  priority: %d\n", *out.Priority)
			}
			if len(out.Tags) > 0 {
				_, _ = fmt.Fprintf(w, "  tags: %s\n", tagStyle.Render(strings.Join(out.Tags, ", ")))
			}
			if out.Task.Description != "" {
				_, _ = fmt.Fprintf(w, "\n%s\n", out.Task.Description)
			}
			if !out.Task.IsLeaf() {
				_, _ = fmt.Fprintln(w, "\nSub-whatdos:")
				for _, childID := range out.Task.Children {
					if child := out.Tree.Find(childID); child != nil {
						_, _ = fmt.Fprintf(w, "  %s: %s\n", child.ID, child.Summary)
					}
				}
			}
			return nil
		},
	}
}

// newLsCommand creates the ls command for listing whatdos in selection order.
func newLsCommand(c *app.Container) *cobra.Command {
	var opts filterOpts

	cmd := &cobra.Command{
		Use:     "ls",
		Aliases: []string{"list"},
		Short:   "List whatdos in selection order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uc := c.ListTasksUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.ListTasksInput{Filter: opts.filter(cmd)})
			if err != nil {
				return err
			}
			if len(out.Candidates) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Nothing to do")
				return nil
			}
			printCandidates(cmd, out.Candidates, out.Tree.Active)
			return nil
		},
	}
	opts.register(cmd)
	return cmd
}

// newRmCommand creates the rm command for deleting whatdos.
func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete"},
		Short:   "Delete a whatdo and its sub-whatdos",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc := c.DeleteTaskUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.DeleteTaskInput{ID: args[0]})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", out.Task.ID)
			return nil
		},
	}
}

// filterOpts holds the shared selection filter flags.
type filterOpts struct {
	Tags      []string
	AllTags   bool
	Priority  int
	RootsOnly bool
}

func (o *filterOpts) register(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&o.Tags, "tag", "t", nil, "Only whatdos with a matching tag (own or inherited)")
	cmd.Flags().BoolVar(&o.AllTags, "all-tags", false, "Require all given tags instead of any")
	cmd.Flags().IntVarP(&o.Priority, "priority", "p", 0, "Only whatdos with priority <= N")
	cmd.Flags().BoolVar(&o.RootsOnly, "roots-only", false, "Ignore sub-whatdos")
}

func (o *filterOpts) filter(cmd *cobra.Command) domain.Filter {
	f := domain.Filter{
		Tags:      o.Tags,
		AllTags:   o.AllTags,
		RootsOnly: o.RootsOnly,
	}
	if cmd.Flags().Changed("priority") {
		p := o.Priority
		f.MaxPriority = &p
	}
	return f
}

// printCandidates renders a selection-ordered candidate list.
func printCandidates(cmd *cobra.Command, candidates []domain.Candidate, activeID string) {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, cand := range candidates {
		marker := " "
		if cand.Task.ID == activeID {
			marker = activeStyle.Render("*")
		} else if cand.Queued() {
			marker = queuedStyle.Render(">")
		}
		priority := "-"
		if cand.Priority != nil {
			priority = fmt.Sprintf("%d", *cand.Priority)
		}
		tags := ""
		if len(cand.Tags) > 0 {
			tags = tagStyle.Render("#" + strings.Join(cand.Tags, " #"))
		}
		_, _ = fmt.Fprintf(w, "%s %s\t%s\t%s\t%s\n",
			marker, idStyle.Render(cand.Task.ID), priority, cand.Task.Summary, tags)
	}
	_ = w.Flush()
}
