package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"receiptbook/internal/models"
)

func newProfileCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or edit the administrator profile",
	}
	cmd.AddCommand(
		newProfileShowCmd(a),
		newProfileUpdateCmd(a),
		newProfileSetPasswordCmd(a),
		newProfileSetPinCmd(a),
	)
	return cmd
}

func newProfileShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the stored profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, err := a.credentials.Admin(cmd.Context())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:            %s\n", admin.Name)
			fmt.Fprintf(out, "Block/Unit:      %s\n", admin.BlockNumber)
			fmt.Fprintf(out, "Auth method:     %s\n", admin.AuthMethod)
			if admin.Username != "" {
				fmt.Fprintf(out, "Username:        %s\n", admin.Username)
			}
			fmt.Fprintf(out, "Society:         %s\n", admin.SocietyName)
			fmt.Fprintf(out, "Address:         %s\n", admin.SocietyAddress)
			fmt.Fprintf(out, "Registration:    %s\n", admin.SocietyRegNo)
			fmt.Fprintf(out, "Signature:       %s\n", presence(admin.Signature))
			return nil
		},
	}
}

func newProfileUpdateCmd(a *app) *cobra.Command {
	var (
		name          string
		block         string
		societyName   string
		societyAddr   string
		societyRegNo  string
		signatureFile string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Merge the given fields into the profile",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var update models.ProfileUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				update.Name = &name
			}
			if flags.Changed("block") {
				update.BlockNumber = &block
			}
			if flags.Changed("society-name") {
				update.SocietyName = &societyName
			}
			if flags.Changed("society-address") {
				update.SocietyAddress = &societyAddr
			}
			if flags.Changed("society-reg-no") {
				update.SocietyRegNo = &societyRegNo
			}
			if flags.Changed("signature") {
				sig, err := loadSignature(signatureFile)
				if err != nil {
					return err
				}
				update.Signature = &sig
			}

			if err := a.credentials.UpdateAdmin(cmd.Context(), update); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name printed on documents")
	cmd.Flags().StringVar(&block, "block", "", "block/unit identifier")
	cmd.Flags().StringVar(&societyName, "society-name", "", "society name")
	cmd.Flags().StringVar(&societyAddr, "society-address", "", "society postal address")
	cmd.Flags().StringVar(&societyRegNo, "society-reg-no", "", "society registration number")
	cmd.Flags().StringVar(&signatureFile, "signature", "", "path to a PNG/JPEG signature image, or empty string to clear")
	return cmd
}

func newProfileSetPasswordCmd(a *app) *cobra.Command {
	var newPassword, confirm string

	cmd := &cobra.Command{
		Use:   "set-password",
		Short: "Replace the password (password-mode profiles only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if newPassword != confirm {
				return fmt.Errorf("password and confirmation do not match")
			}
			if err := a.credentials.UpdatePassword(cmd.Context(), newPassword); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&newPassword, "new", "", "new password")
	cmd.Flags().StringVar(&confirm, "confirm", "", "repeat the new password")
	return cmd
}

func newProfileSetPinCmd(a *app) *cobra.Command {
	var newPIN, confirm string

	cmd := &cobra.Command{
		Use:   "set-pin",
		Short: "Replace the PIN (pin-mode profiles only)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if newPIN != confirm {
				return fmt.Errorf("pin and confirmation do not match")
			}
			if err := a.credentials.UpdatePin(cmd.Context(), newPIN); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "PIN updated.")
			return nil
		},
	}

	cmd.Flags().StringVar(&newPIN, "new", "", "new 4-digit PIN")
	cmd.Flags().StringVar(&confirm, "confirm", "", "repeat the new PIN")
	return cmd
}

// loadSignature reads an image file into the base64 data-URL form the
// profile stores. An empty path clears the signature.
func loadSignature(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read signature image: %w", err)
	}

	var mime string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		mime = "image/png"
	case ".jpg", ".jpeg":
		mime = "image/jpeg"
	default:
		return "", fmt.Errorf("unsupported signature image %q (want .png or .jpg)", path)
	}

	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(raw), nil
}

func presence(s string) string {
	if s == "" {
		return "(none)"
	}
	return "(set)"
}
