package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"user-service/internal/usecase/user"
)

// getCommand constructs the 'get' subcommand that looks up a single user by
// ID or by email address.
func getCommand(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Look up a user by ID or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetInt64("user-id")
			email, _ := cmd.Flags().GetString("email")

			if (userID == 0) == (email == "") {
				return fmt.Errorf("exactly one of --user-id or --email must be set")
			}

			uc, cleanup, err := app.newUsecase()
			if err != nil {
				return err
			}
			defer cleanup()

			var out *user.UserOutput
			if userID != 0 {
				out, err = uc.GetUser(cmd.Context(), userID)
			} else {
				out, err = uc.GetUserByEmail(cmd.Context(), email)
			}
			if err != nil {
				return err
			}

			printUser(out)
			return nil
		},
	}

	cmd.Flags().Int64("user-id", 0, "ID of the user to look up")
	cmd.Flags().String("email", "", "Email of the user to look up")

	return cmd
}
