package cli

import (
	"fmt"
	"slices"
	"strings"

	"github.com/deppfellow/go-posts/internal/lib/email"
	"github.com/spf13/cobra"
)

func newEmailCommand() *cobra.Command {
	emailCmd := &cobra.Command{
		Use:   "email",
		Short: "Email template tooling",
	}

	emailCmd.AddCommand(&cobra.Command{
		Use:       "preview <template>",
		Short:     "Render an email template with sample data to stdout",
		Args:      cobra.ExactArgs(1),
		ValidArgs: templateNames(),
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := email.Preview(email.Template(args[0]))
			if err != nil {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(templateNames(), ", "))
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), body)
			return err
		},
	})

	return emailCmd
}

func templateNames() []string {
	names := make([]string, 0, len(email.PreviewData))
	for name := range email.PreviewData {
		names = append(names, string(name))
	}
	slices.Sort(names)
	return names
}
