package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tablerename/cmd/tablerename/opts"
	"github.com/walteh/tablerename/pkg/log"
	"github.com/walteh/tablerename/pkg/operation"
	"github.com/walteh/tablerename/pkg/status"
	"github.com/walteh/tablerename/pkg/workspace"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates the dry run command
func NewPlanCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Show what a run would change without writing anything",
		Long: `Plan performs a full run against a read-only view of the files and prints
a table of every target path, what would happen to it, and how many
occurrences would be replaced.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			zlog := zerolog.Ctx(ctx)

			files := workspace.ReadOnly(workspace.NewDir(o.Config.Root))
			logger := log.New(io.Discard, *zlog, o.Formatter)
			ctx = log.NewContext(ctx, logger)

			op, err := operation.NewRenameOperation(operation.Options{
				Config: o.Config,
				Files:  files,
			})
			if err != nil {
				return errors.Errorf("creating rename operation: %w", err)
			}

			if err := operation.NewRunner(zlog).Run(ctx, op); err != nil {
				return err
			}

			return renderPlan(o.Stdout, logger.Results())
		},
	}

	return cmd
}

// renderPlan prints the planned results as a table followed by a summary
func renderPlan(w io.Writer, results []status.Result) error {
	data := pterm.TableData{{"FILE", "STATUS", "REPLACEMENTS"}}
	for _, r := range results {
		data = append(data, []string{r.Path, r.Status.String(), strconv.Itoa(r.Replacements)})
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return errors.Errorf("rendering plan: %w", err)
	}

	if _, err := fmt.Fprintln(w, table); err != nil {
		return errors.Errorf("writing plan: %w", err)
	}
	if _, err := fmt.Fprint(w, pterm.Info.Sprintln(status.Summarize(results).String())); err != nil {
		return errors.Errorf("writing plan: %w", err)
	}
	return nil
}
