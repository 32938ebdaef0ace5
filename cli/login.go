package cli

import (
	"fmt"

	"farmereats/services/auth"

	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in to an existing account",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := authService.Login(cmd.Context(), email, password)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), auth.UserMessage(err))
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Login successful!")
			if resp.Token != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Token: %s\n", resp.Token)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}
