package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fitpoint-gym/member-client/internal/app/login"
)

var (
	loginID   string
	loginName string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in with your member id and full name",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&loginID, "id", "", "member id")
	loginCmd.Flags().StringVar(&loginName, "name", "", "full name as registered with the gym")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	if err := a.requireStore(); err != nil {
		return err
	}

	m, err := a.flows.AttemptLogin(cmd.Context(), login.Claim{MemberID: loginID, FullName: loginName})
	if err != nil {
		return err
	}

	s := a.metrics.Summarize(m)
	fmt.Printf("Welcome, %s\n", s.DisplayName)
	printSummary(s)
	return nil
}
