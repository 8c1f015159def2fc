package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// statsCommand constructs the 'stats' subcommand reporting user counts.
func statsCommand(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show user statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, cleanup, err := app.newUsecase()
			if err != nil {
				return err
			}
			defer cleanup()

			list, err := uc.ListUsers(cmd.Context(), 1, 1)
			if err != nil {
				return err
			}

			active, err := uc.ActiveUsersCount(cmd.Context())
			if err != nil {
				return err
			}

			fmt.Printf("Total users:  %d\n", list.Total)
			fmt.Printf("Active users: %d\n", active)
			return nil
		},
	}

	return cmd
}
