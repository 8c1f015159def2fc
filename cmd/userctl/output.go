package main

import (
	"fmt"
	"time"

	"user-service/internal/usecase/user"
)

func printUser(out *user.UserOutput) {
	fmt.Printf("ID:         %d\n", out.ID)
	fmt.Printf("Email:      %s\n", out.Email)
	fmt.Printf("Name:       %s\n", out.Name)
	fmt.Printf("Created at: %s\n", out.CreatedAt.Format(time.RFC3339))
	fmt.Printf("Updated at: %s\n", out.UpdatedAt.Format(time.RFC3339))
}

func printUserLine(out *user.UserOutput) {
	fmt.Printf("%-6d %-40s %s\n", out.ID, out.Email, out.Name)
}
