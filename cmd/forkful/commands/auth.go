package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"forkful/internal/domain"
)

func registerCmd() *cobra.Command {
	var reg domain.Registration
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := wire.API.Register(cmd.Context(), reg)
			if err != nil {
				return err
			}
			fmt.Printf("Registered and logged in as %s <%s>\n", user.Username, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&reg.Username, "username", "u", "", "account username")
	cmd.Flags().StringVarP(&reg.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&reg.Password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func loginCmd() *cobra.Command {
	var creds domain.Credentials
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := wire.API.Login(cmd.Context(), creds)
			if err != nil {
				return err
			}
			fmt.Printf("Logged in as %s <%s>\n", user.Username, user.Email)
			return nil
		},
	}
	cmd.Flags().StringVarP(&creds.Email, "email", "e", "", "account email")
	cmd.Flags().StringVarP(&creds.Password, "password", "p", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Drop the local session even when the server-side call fails;
			// otherwise a dead backend pins us to a stale cookie.
			apiErr := wire.API.Logout(cmd.Context())
			if err := wire.Sessions.Clear(); err != nil {
				return err
			}
			if apiErr != nil {
				return apiErr
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}

func whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the account behind the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := wire.API.Me(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Printf("%s <%s> (id %d)\n", user.Username, user.Email, user.ID)
			return nil
		},
	}
}

func forgotPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forgot-password <email>",
		Short: "Request a password reset token by email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.API.ForgotPassword(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Println("Reset token sent, check your inbox")
			return nil
		},
	}
	return cmd
}

func resetPasswordCmd() *cobra.Command {
	var reset domain.PasswordReset
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password using the emailed token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.API.ResetPassword(cmd.Context(), reset); err != nil {
				return err
			}
			fmt.Println("Password updated, log in with the new one")
			return nil
		},
	}
	cmd.Flags().StringVarP(&reset.Token, "token", "t", "", "reset token from the email")
	cmd.Flags().StringVarP(&reset.Password, "password", "p", "", "new password")
	_ = cmd.MarkFlagRequired("token")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
