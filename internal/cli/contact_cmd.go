package cli

import (
	"context"
	"fmt"

	"github.com/alexanderramin/ember/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newContactCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Manage emergency contacts",
	}

	cmd.AddCommand(
		newContactAddCmd(app),
		newContactListCmd(app),
		newContactRemoveCmd(app),
	)

	return cmd
}

func newContactAddCmd(app *App) *cobra.Command {
	var name, phone, email string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an emergency contact",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				if !app.interactive() {
					return fmt.Errorf("--name is required in non-interactive mode")
				}
				v := contactFormValues{}
				if err := contactForm(&v).Run(); err != nil {
					return err
				}
				name, phone, email = v.Name, v.Phone, v.Email
			}
			c, err := app.Contacts.Add(context.Background(), name, phone, email)
			if err != nil {
				return err
			}
			fmt.Printf("Added contact %s (%s)\n", c.Name, c.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Contact name")
	cmd.Flags().StringVar(&phone, "phone", "", "Phone number")
	cmd.Flags().StringVar(&email, "email", "", "Email address")

	return cmd
}

func newContactListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List emergency contacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			contacts, err := app.Contacts.List(context.Background())
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatContactList(contacts))
			return nil
		},
	}
}

func newContactRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove an emergency contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Contacts.Remove(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Removed contact %s\n", args[0])
			return nil
		},
	}
}
