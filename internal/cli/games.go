package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newGamesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "games",
		Short: "Game availability commands",
	}

	cmd.AddCommand(newGamesListCmd())
	cmd.AddCommand(newGamesEnableCmd())
	cmd.AddCommand(newGamesDisableCmd())

	return cmd
}

func newGamesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog games and their availability",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []Game

			if err := client.Get("/api/admin/games", &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newGamesEnableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enable <game-id>",
		Short: "Make a game available to players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setGameActive(args[0], true)
		},
	}
}

func newGamesDisableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disable <game-id>",
		Short: "Make a game unavailable to players",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return setGameActive(args[0], false)
		},
	}
}

func setGameActive(gameID string, active bool) error {
	req := map[string]bool{"isActive": active}

	if err := client.Patch("/api/admin/games/"+gameID, req, nil); err != nil {
		return err
	}

	state := "enabled"
	if !active {
		state = "disabled"
	}

	out := NewOutput(cfg.Output)
	out.PrintMessage(fmt.Sprintf("Game %s %s", gameID, state))
	return nil
}
