package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the credential",
	RunE: func(cmd *cobra.Command, args []string) error {
		pw := loginPassword
		if pw == "" {
			pw = os.Getenv("DASHBOARD_PASSWORD")
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		if err := session.Login(ctx, loginEmail, pw); err != nil {
			return fmt.Errorf("login failed: %w", err)
		}
		identity := session.Identity()
		fmt.Printf("signed in as %s (%s)\n", identity.Name, identity.Role)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password (prefer DASHBOARD_PASSWORD)")
	_ = loginCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(loginCmd)
}
