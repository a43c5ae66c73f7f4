package commands

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/tablerename/cmd/tablerename/opts"
	"gitlab.com/tozd/go/errors"
)

// NewCheckCmd creates the command that validates the configuration only
func NewCheckCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the replacement mapping and file list",
		Long: `Check validates the configuration without opening any target file.
A mapping is rejected when any replacement's output could be matched
again by a rule, which would make a second run change files again.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// the root command validated the config before we got here
			var b strings.Builder
			for _, r := range o.Config.Replacements {
				line := fmt.Sprintf("%s -> %s", r.Old, r.New)
				if r.Files != "" {
					line += fmt.Sprintf(" [%s]", r.Files)
				}
				b.WriteString(pterm.Sprintln("  " + line))
			}
			b.WriteString(pterm.Success.Sprintln(o.Config.String()))

			if _, err := fmt.Fprint(o.Stdout, b.String()); err != nil {
				return errors.Errorf("writing check: %w", err)
			}
			return nil
		},
	}

	return cmd
}
