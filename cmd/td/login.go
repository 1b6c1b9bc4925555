package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Authenticate against the task server",
	Long: `Authenticate against the task server.

Prompts for the password when running interactively; otherwise reads it
from stdin. The session token is stored until logout or expiry.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLogin,
}

var loginUsername string

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the current session",
	Args:  cobra.NoArgs,
	RunE:  runLogout,
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd)
	loginCmd.Flags().StringVar(&loginUsername, "username", "", "Username to authenticate as")
}

func runLogin(cmd *cobra.Command, args []string) error {
	username := loginUsername
	if len(args) > 0 {
		username = args[0]
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}

	password, err := readPassword(cmd)
	if err != nil {
		return err
	}

	t, err := newTracker()
	if err != nil {
		return err
	}
	if err := t.Login(cmd.Context(), username, password); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "logged in as %s\n", username)
	return nil
}

// readPassword prompts on a terminal, or reads one line from stdin when
// input is piped (scripts, tests).
func readPassword(cmd *cobra.Command) (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(cmd.OutOrStdout(), "Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(cmd.OutOrStdout())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read password: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	t, err := newTracker()
	if err != nil {
		return err
	}
	if err := t.Logout(); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "logged out")
	return nil
}
