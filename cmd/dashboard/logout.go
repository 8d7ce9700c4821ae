package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and clear the stored credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		session.Logout()
		fmt.Println("signed out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
