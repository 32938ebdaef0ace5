package cli

import (
	"bufio"
	"fmt"

	"farmereats/services/auth"

	"github.com/spf13/cobra"
)

func forgotPasswordCmd() *cobra.Command {
	var phone string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Recover an account: request an OTP, verify it, set a new password",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			ctx := cmd.Context()

			if _, err := authService.ForgotPassword(ctx, phone); err != nil {
				fmt.Fprintln(out, auth.UserMessage(err))
				return nil
			}
			fmt.Fprintln(out, "An OTP has been sent to your phone.")

			scanner := bufio.NewScanner(cmd.InOrStdin())
			for {
				otp, err := promptLine(scanner, out, "OTP (or \"resend\")")
				if err != nil {
					return nil
				}
				if otp == "resend" {
					if rerr := authService.ResendOTP(ctx, phone); rerr != nil {
						fmt.Fprintln(out, auth.UserMessage(rerr))
						continue
					}
					fmt.Fprintln(out, "A new OTP has been sent to your phone.")
					continue
				}
				if err := authService.VerifyOTP(ctx, otp); err != nil {
					fmt.Fprintln(out, auth.UserMessage(err))
					continue
				}
				break
			}

			for {
				newPassword, err := promptLine(scanner, out, "New password")
				if err != nil {
					return nil
				}
				confirm, err := promptLine(scanner, out, "Confirm password")
				if err != nil {
					return nil
				}
				if err := authService.ResetPassword(ctx, newPassword, confirm); err != nil {
					fmt.Fprintln(out, auth.UserMessage(err))
					continue
				}
				fmt.Fprintln(out, "Password reset successful!")
				return nil
			}
		},
	}

	cmd.Flags().StringVar(&phone, "phone", "", "account phone number")
	return cmd
}
