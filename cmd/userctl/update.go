package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"user-service/internal/usecase/user"
)

type updateFlags struct {
	Email string `validate:"omitempty,email"`
	Name  string `validate:"omitempty,min=1,max=100"`
}

// updateCommand constructs the 'update' subcommand that changes a user's name
// and/or email. Flags left unset keep the current value.
func updateCommand(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a user's name and/or email",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _ := cmd.Flags().GetInt64("user-id")

			var in user.UpdateUserInput
			if cmd.Flags().Changed("name") {
				name, _ := cmd.Flags().GetString("name")
				in.Name = &name
			}
			if cmd.Flags().Changed("email") {
				email, _ := cmd.Flags().GetString("email")
				in.Email = &email
			}

			if in.Name == nil && in.Email == nil {
				return fmt.Errorf("at least one of --name or --email must be set")
			}

			flags := updateFlags{}
			if in.Email != nil {
				flags.Email = *in.Email
			}
			if in.Name != nil {
				flags.Name = *in.Name
			}
			if err := app.validate.Struct(flags); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			uc, cleanup, err := app.newUsecase()
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := uc.UpdateUser(cmd.Context(), userID, in)
			if err != nil {
				return err
			}

			fmt.Println("User updated:")
			printUser(out)
			return nil
		},
	}

	cmd.Flags().Int64("user-id", 0, "ID of the user to update")
	cmd.Flags().String("name", "", "New display name")
	cmd.Flags().String("email", "", "New email address")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
