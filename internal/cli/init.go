package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/runoshun/git-whatdo/internal/app"
	"github.com/runoshun/git-whatdo/internal/usecase"
)

// newInitCommand creates the init command.
func newInitCommand(c *app.Container) *cobra.Command {
	var summary string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create WHATDO.yaml at the repository root",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if summary == "" {
				summary = filepath.Base(c.Paths.RepoRoot)
			}

			uc := c.InitRepoUseCase()
			out, err := uc.Execute(cmd.Context(), usecase.InitRepoInput{Summary: summary})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Initialized %s\n", out.Path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&summary, "summary", "m", "", "Project summary (defaults to the directory name)")
	return cmd
}
