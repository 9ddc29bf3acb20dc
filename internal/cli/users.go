package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newUsersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "User management commands",
	}

	cmd.AddCommand(newUsersListCmd())
	cmd.AddCommand(newUsersPromoteCmd())
	cmd.AddCommand(newUsersDemoteCmd())
	cmd.AddCommand(newUsersDeleteCmd())

	return cmd
}

func newUsersListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all users",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []User

			if err := client.Get("/api/admin/users", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newUsersPromoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "promote <user-id>",
		Short: "Grant admin privileges to a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]bool{"isAdmin": true}

			if err := client.Patch("/api/admin/users/"+args[0]+"/admin", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("User %s promoted to admin", args[0]))
			return nil
		},
	}
}

func newUsersDemoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demote <user-id>",
		Short: "Revoke admin privileges from a user",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := map[string]bool{"isAdmin": false}

			if err := client.Patch("/api/admin/users/"+args[0]+"/admin", req, nil); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("User %s demoted", args[0]))
			return nil
		},
	}
}

func newUsersDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <user-id>",
		Short: "Delete a user account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/admin/users/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("User %s deleted", args[0]))
			return nil
		},
	}
}
