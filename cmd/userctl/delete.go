package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// deleteCommand constructs the 'delete' subcommand. Deletion asks for
// confirmation unless --yes is given.
func deleteCommand(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a user by ID",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetInt64("user-id")
			yes, _ := cmd.Flags().GetBool("yes")

			if !yes {
				fmt.Printf("Delete user %d? [y/N]: ", userID)
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				if strings.ToLower(strings.TrimSpace(answer)) != "y" {
					fmt.Println("Aborted.")
					return nil
				}
			}

			uc, cleanup, err := app.newUsecase()
			if err != nil {
				return err
			}
			defer cleanup()

			deleted, err := uc.DeleteUser(cmd.Context(), userID)
			if err != nil {
				return err
			}
			if !deleted {
				return fmt.Errorf("user %d not found", userID)
			}

			fmt.Printf("User %d deleted.\n", userID)
			return nil
		},
	}

	cmd.Flags().Int64("user-id", 0, "ID of the user to delete")
	cmd.Flags().Bool("yes", false, "Skip the confirmation prompt")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
