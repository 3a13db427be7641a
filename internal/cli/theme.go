package cli

import (
	"fmt"

	"blogsphere/internal/app"

	"github.com/spf13/cobra"
)

func newThemeCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show the colour theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.Theme.Current(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n", t)
			return nil
		},
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.Theme.Toggle(cmd.Context())
			if err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Theme switched to %s.", t)
			return nil
		},
	})
	return cmd
}
