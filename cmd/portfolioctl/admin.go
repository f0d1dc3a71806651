package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	adminUsername string
	adminPassword string
)

var createAdminCmd = &cobra.Command{
	Use:   "create-admin <email>",
	Short: "Create an admin account, or promote an existing user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		user, err := svc.auth.CreateAdmin(cmd.Context(), adminUsername, args[0], adminPassword)
		if err != nil {
			return fmt.Errorf("failed to create admin: %w", err)
		}
		fmt.Println(success(fmt.Sprintf("%s (%s) is now an admin", user.Username, user.Email)))
		return nil
	},
}

func init() {
	createAdminCmd.Flags().StringVar(&adminUsername, "username", "admin", "username for a new account")
	createAdminCmd.Flags().StringVar(&adminPassword, "password", "", "password for a new account")
}
