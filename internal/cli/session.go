package cli

import (
	"fmt"

	"blogsphere/internal/app"

	"github.com/spf13/cobra"
)

func newRegisterCmd(a *app.App) *cobra.Command {
	var name, email, password string
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}
			if _, _, err := a.Register(cmd.Context(), name, email, pw); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Registration successful! Please login.")
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func newLoginCmd(a *app.App) *cobra.Command {
	var email, password string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := readPassword(cmd, password)
			if err != nil {
				return err
			}
			u, v, err := a.Login(cmd.Context(), email, pw)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			success(out, "Welcome back, %s!", u.Name)
			renderView(out, a, v)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "email address")
	cmd.Flags().StringVar(&password, "password", "", "password (prompted when omitted)")
	return cmd
}

func newLogoutCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Log out",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if _, err := a.Logout(cmd.Context()); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "Logged out successfully!")
			return nil
		},
	}
}

func newWhoamiCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			u, ok := a.Sessions.Current()
			if !ok {
				fmt.Fprintln(out, "Not logged in.")
				return nil
			}
			fmt.Fprintf(out, "%s <%s>, member since %s\n", u.Name, u.Email, formatDate(u.JoinDate))
			return nil
		},
	}
}
