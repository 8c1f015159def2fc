package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"user-service/internal/usecase/user"
)

type createFlags struct {
	Email string `validate:"required,email"`
	Name  string `validate:"required,min=1,max=100"`
}

// createCommand constructs the 'create' subcommand that registers a new user.
func createCommand(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new user",
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			name, _ := cmd.Flags().GetString("name")

			if err := app.validate.Struct(createFlags{Email: email, Name: name}); err != nil {
				return fmt.Errorf("invalid flags: %w", err)
			}

			uc, cleanup, err := app.newUsecase()
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := uc.CreateUser(cmd.Context(), user.CreateUserInput{
				Email: email,
				Name:  name,
			})
			if err != nil {
				return err
			}

			fmt.Println("User created:")
			printUser(out)
			return nil
		},
	}

	cmd.Flags().String("email", "", "Email address of the new user")
	cmd.Flags().String("name", "", "Display name of the new user")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
