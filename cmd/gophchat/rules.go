package main

import (
	"fmt"

	"github.com/dmitrijs2005/gophchat/internal/validation"
	"github.com/spf13/cobra"
)

func newRulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rules",
		Short: "Print the registration rules",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "ID number: %s\n", validation.Hints.IDNumber)
			fmt.Fprintf(w, "Phone number: %s\n", validation.Hints.Phone)
			fmt.Fprintf(w, "Password: %s\n", validation.Hints.Password)
		},
	}
}
