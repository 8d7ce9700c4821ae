package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current identity and credential expiry",
	RunE: func(cmd *cobra.Command, args []string) error {
		identity := session.Identity()
		if identity == nil {
			fmt.Println("not signed in")
			return nil
		}
		fmt.Printf("user:  %s <%s>\n", identity.Name, identity.Email)
		fmt.Printf("role:  %s\n", identity.Role)
		if exp, ok := session.CredentialExpiry(); ok {
			fmt.Printf("token: expires %s\n", exp.Format(time.RFC3339))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
