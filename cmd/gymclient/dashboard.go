package main

import (
	"fmt"
	"log/slog"

	qrcode "github.com/skip2/go-qrcode"
	"github.com/spf13/cobra"

	"github.com/fitpoint-gym/member-client/internal/app/dashboard"
)

var qrOut string

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show your membership dashboard and check-in code",
	RunE:  runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVar(&qrOut, "qr-out", "", "also write the check-in code as a PNG to this path")
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command, args []string) error {
	a, err := buildApp()
	if err != nil {
		return err
	}
	if err := a.requireStore(); err != nil {
		return err
	}

	m, err := a.flows.Restore(cmd.Context())
	if err != nil {
		return err
	}

	s := a.metrics.Summarize(m)
	fmt.Printf("Welcome back, %s\n", s.DisplayName)
	printSummary(s)
	renderToken(s.TokenPayload)
	return nil
}

func printSummary(s dashboard.Summary) {
	fmt.Printf("Membership: %s, %d days remaining\n", orDash(s.MembershipStatus), s.RemainingDays)
	fmt.Printf("Visits: %d  Time spent: %d mins\n", s.TotalVisits, s.TotalMinutes)
	if s.CheckedIn {
		fmt.Println("You are currently checked in.")
	}
}

// renderToken draws the identity token as a QR code. No token, no code: the
// dashboard simply omits it rather than failing.
func renderToken(payload string) {
	if payload == "" {
		return
	}
	q, err := qrcode.New(payload, qrcode.Medium)
	if err != nil {
		slog.Warn("check-in code rendering failed", "error", err)
		return
	}
	fmt.Println("Scan at the entrance:")
	fmt.Print(q.ToSmallString(false))

	if qrOut != "" {
		if err := qrcode.WriteFile(payload, qrcode.Medium, 256, qrOut); err != nil {
			slog.Warn("writing check-in code image failed", "path", qrOut, "error", err)
			return
		}
		fmt.Printf("Check-in code written to %s\n", qrOut)
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
