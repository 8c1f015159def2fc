package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listUsersCommand constructs the 'list-users' subcommand.
func listUsersCommand(app *cliApp) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list-users",
		Short: "List users page by page",
		RunE: func(cmd *cobra.Command, args []string) error {
			page, _ := cmd.Flags().GetInt("page")
			perPage, _ := cmd.Flags().GetInt("per-page")

			uc, cleanup, err := app.newUsecase()
			if err != nil {
				return err
			}
			defer cleanup()

			out, err := uc.ListUsers(cmd.Context(), page, perPage)
			if err != nil {
				return err
			}

			if len(out.Users) == 0 {
				fmt.Println("No users found.")
				return nil
			}

			fmt.Printf("%-6s %-40s %s\n", "ID", "EMAIL", "NAME")
			for i := range out.Users {
				printUserLine(&out.Users[i])
			}
			fmt.Printf("\nPage %d (%d per page), %d users total\n", out.Page, out.PerPage, out.Total)
			return nil
		},
	}

	cmd.Flags().Int("page", 1, "Page number, starting at 1")
	cmd.Flags().Int("per-page", 10, "Users per page (max 100)")

	return cmd
}
