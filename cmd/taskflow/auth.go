package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/jrsteele09/taskflow-client/transport"
)

func loginCmd(a *app) *cobra.Command {
	var (
		email    string
		password string
		remember bool
	)
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the credential",
		Long: `Sign in with email and password. Without --remember the credential only lives as long
as this process, which is rarely what you want from a command line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if password == "" {
				fmt.Fprint(out, "Password: ")
				passwordBytes, err := a.readPassword(a.stdin)
				fprintln(out)
				if err != nil {
					return errors.Wrap(err, "reading password")
				}
				password = string(passwordBytes)
			}

			if err := a.client.Login(cmd.Context(), email, password, remember); err != nil {
				return errors.New(transport.Message(err, "Login failed"))
			}
			fmt.Fprintf(out, "%s Signed in as %s <%s>\n", okStyle.Render("✓"), a.client.Stores.Auth.UserName(), a.client.Stores.Auth.UserEmail())
			return nil
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&password, "password", "p", "", "account password (prompted when omitted)")
	cmd.Flags().BoolVarP(&remember, "remember", "r", false, "keep the credential across runs")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func logoutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.client.Logout(cmd.Context()); err != nil {
				return err
			}
			fprintln(cmd.OutOrStdout(), "Signed out")
			return nil
		},
	}
}

func whoamiCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if err := a.requireSignedIn(ctx); err != nil {
				return err
			}
			auth := a.client.Stores.Auth
			if _, err := auth.FetchUser(ctx); err != nil {
				if !auth.IsAuthenticated(ctx) {
					return errNotSignedIn
				}
				a.log.Warn().Err(err).Msg("showing the stored profile")
			}
			u := auth.User()
			if u == nil {
				return errNotSignedIn
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> %s\n", headerStyle.Render(u.Name), u.Email, badgeStyle.Render(string(u.Role)))
			return nil
		},
	}
}
