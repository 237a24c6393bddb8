package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rolesCmd = &cobra.Command{
	Use:   "roles",
	Short: "List roles covered by the built-in question bank",
	RunE: func(cmd *cobra.Command, args []string) error {
		qb, err := loadBank(cmd)
		if err != nil {
			return err
		}
		for _, role := range qb.Roles() {
			fmt.Printf("%-22s %d question(s)\n", role, len(qb.ForRole(role)))
		}
		return nil
	},
}

func init() {
	rolesCmd.Flags().String("bank", "", "extra question bank YAML file")
}
