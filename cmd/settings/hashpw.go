package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/vbm-settings/internal/settings"
	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var errEmptyPassword = errors.New("empty password")

type hashPasswordOptions struct {
	cost        int
	username    string
	permissions string
	copy        bool
}

func newHashPasswordCmd() *cobra.Command {
	opts := &hashPasswordOptions{}

	cmd := &cobra.Command{
		Use:   "hash-pw",
		Short: "Hash a password for an admin user entry",
		Long: `hash-pw reads a password from the first line of stdin and prints its
bcrypt hash. With --username the full admin user entry is printed as JSON,
ready to paste into the project configuration file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runHashPassword(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.cost, "cost", settings.DefaultHashCost, "bcrypt cost")
	cmd.Flags().StringVar(&opts.username, "username", "", "print a full user entry for this username")
	cmd.Flags().StringVar(&opts.permissions, "permissions", "*", "permissions of the user entry")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "also copy the output to the clipboard")

	return cmd
}

func runHashPassword(cmd *cobra.Command, opts *hashPasswordOptions) error {
	password, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && password == "" {
		return fmt.Errorf("error reading password: %w", err)
	}

	password = strings.TrimRight(password, "\r\n")
	if password == "" {
		return errEmptyPassword
	}

	user, err := settings.NewUserRecord(opts.username, password, opts.permissions, opts.cost)
	if err != nil {
		return err
	}

	out := user.PasswordHash
	if opts.username != "" {
		b, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("error encoding user entry: %w", err)
		}
		out = string(b)
	}

	if opts.copy {
		if err := clipboard.WriteAll(out); err != nil {
			return fmt.Errorf("error copying to clipboard: %w", err)
		}
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
	return err
}
