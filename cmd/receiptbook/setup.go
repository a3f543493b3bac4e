package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"receiptbook/internal/models"
)

func newSetupCmd(a *app) *cobra.Command {
	var (
		method   string
		username string
		password string
		pin      string
		force    bool
	)

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Create the administrator profile (first run)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			status, err := a.credentials.Status(ctx)
			if err != nil {
				return err
			}
			if status.IsSetup && !force {
				return fmt.Errorf("already set up (auth method %q); use --force to overwrite", status.AuthMethod)
			}

			switch models.AuthMethod(method) {
			case models.AuthPassword:
				if err := a.credentials.SetupPassword(ctx, username, password); err != nil {
					return err
				}
			case models.AuthPIN:
				if err := a.credentials.SetupPIN(ctx, pin); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unknown auth method %q (want password or pin)", method)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Administrator profile created.")
			fmt.Fprintln(cmd.OutOrStdout(), "Update the society details with: receiptbook profile update")
			return nil
		},
	}

	cmd.Flags().StringVar(&method, "method", "password", "authentication method: password or pin")
	cmd.Flags().StringVar(&username, "username", "", "login name (password method only)")
	cmd.Flags().StringVar(&password, "password", "", "password (password method only)")
	cmd.Flags().StringVar(&pin, "pin", "", "4-digit PIN (pin method only)")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing profile")
	return cmd
}

func newStatusCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show whether setup has run and which auth method is active",
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := a.credentials.Status(cmd.Context())
			if err != nil {
				return err
			}
			if !status.IsSetup {
				fmt.Fprintln(cmd.OutOrStdout(), "Not set up. Run: receiptbook setup")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set up with %s authentication.\n", status.AuthMethod)
			if status.Username != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Username: %s\n", status.Username)
			}
			return nil
		},
	}
}

func newLoginCmd(a *app) *cobra.Command {
	var (
		username string
		password string
		pin      string
	)

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Verify credentials",
		Long: "Verify credentials against the stored profile. A mismatch is a normal\n" +
			"negative answer, not an error; the command exits non-zero so scripts can gate on it.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			status, err := a.credentials.Status(ctx)
			if err != nil {
				return err
			}
			if !status.IsSetup {
				return fmt.Errorf("not set up; run: receiptbook setup")
			}

			var ok bool
			switch status.AuthMethod {
			case models.AuthPIN:
				ok, err = a.credentials.VerifyPin(ctx, pin)
			default:
				ok, err = a.credentials.VerifyPassword(ctx, username, password)
			}
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("invalid credentials")
			}
			fmt.Fprintln(cmd.OutOrStdout(), "OK")
			return nil
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "login name (password method)")
	cmd.Flags().StringVar(&password, "password", "", "password (password method)")
	cmd.Flags().StringVar(&pin, "pin", "", "4-digit PIN (pin method)")
	return cmd
}
