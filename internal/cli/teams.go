package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTeamsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "teams",
		Short: "Team management commands",
	}

	cmd.AddCommand(newTeamsListCmd())
	cmd.AddCommand(newTeamsDeleteCmd())

	return cmd
}

func newTeamsListCmd() *cobra.Command {
	var detailed bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all teams with resolved members",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Team

			if err := client.Get("/api/admin/teams", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			if detailed {
				for _, t := range result {
					out.Print(t)
					fmt.Println()
				}
				return nil
			}
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&detailed, "detailed", false, "Print full member listings per team")

	return cmd
}

func newTeamsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <team-id>",
		Short: "Delete a team",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := client.Delete("/api/admin/teams/" + args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Team %s deleted", args[0]))
			return nil
		},
	}
}
