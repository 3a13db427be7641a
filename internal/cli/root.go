// Package cli is the command-line front end. Each invocation performs one
// action against the persisted store.
package cli

import (
	"fmt"
	"strconv"

	"blogsphere/internal/app"

	"github.com/spf13/cobra"
)

// NewRootCmd builds the blogsphere command tree over a.
func NewRootCmd(a *app.App) *cobra.Command {
	root := &cobra.Command{
		Use:           "blogsphere [command] [flags]",
		Short:         "BlogSphere: write, share and discuss posts",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			v, err := a.Router.Show(cmd.Context(), app.SectionHome)
			if err != nil {
				return err
			}
			renderView(cmd.OutOrStdout(), a, v)
			return nil
		},
	}

	root.AddCommand(
		newRegisterCmd(a),
		newLoginCmd(a),
		newLogoutCmd(a),
		newWhoamiCmd(a),
		newShowCmd(a),
		newPostCmd(a),
		newCommentCmd(a),
		newThemeCmd(a),
	)
	return root
}

func newShowCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <section>",
		Short: "Show a section: home, dashboard, create, login or register",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, err := app.ParseSection(args[0])
			if err != nil {
				return err
			}
			v, err := a.Router.Show(cmd.Context(), section)
			if err != nil {
				return err
			}
			renderView(cmd.OutOrStdout(), a, v)
			return nil
		},
	}
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid post id %q", arg)
	}
	return id, nil
}
