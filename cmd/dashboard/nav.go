package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Bilalabbasid/CRM-sub000/internal/core/service"
)

var navCmd = &cobra.Command{
	Use:   "nav",
	Short: "Show the menu the current role resolves to",
	RunE: func(cmd *cobra.Command, args []string) error {
		identity := session.Identity()
		if identity == nil {
			fmt.Println("not signed in")
			return nil
		}
		section := ""
		for _, item := range service.ResolveNavigation(identity.Role) {
			if item.Section != section {
				section = item.Section
				fmt.Printf("%s\n", section)
			}
			fmt.Printf("  %-14s %s\n", item.Label, item.Path)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(navCmd)
}
