package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"forkful/internal/domain"
)

func contactCmd() *cobra.Command {
	var msg domain.ContactMessage
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message to the forkful team",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := wire.API.SendContactMessage(cmd.Context(), msg); err != nil {
				return err
			}
			fmt.Println("Message sent")
			return nil
		},
	}
	cmd.Flags().StringVar(&msg.Name, "name", "", "your name")
	cmd.Flags().StringVar(&msg.Email, "email", "", "reply-to email")
	cmd.Flags().StringVar(&msg.Subject, "subject", "", "message subject")
	cmd.Flags().StringVar(&msg.Message, "message", "", "message body")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("message")
	return cmd
}
