package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/shortling/shortling/pkg/core/domain"
)

var (
	loginUsername    string
	registerUsername string
	registerEmail    string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and store the session for later commands",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(consoleNotifier())
		if err != nil {
			return err
		}
		defer a.Close()

		username := loginUsername
		if username == "" {
			if username, err = promptLine("Username: "); err != nil {
				return err
			}
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}

		creds := domain.Credentials{Username: username, Password: password}
		if errs := domain.ValidateLogin(creds); errs != nil {
			return errs
		}
		return a.session.Login(cmd.Context(), creds)
	},
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account (sign in separately afterwards)",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(consoleNotifier())
		if err != nil {
			return err
		}
		defer a.Close()

		username := registerUsername
		if username == "" {
			if username, err = promptLine("Username: "); err != nil {
				return err
			}
		}
		email := registerEmail
		if email == "" {
			if email, err = promptLine("Email: "); err != nil {
				return err
			}
		}
		password, err := promptPassword("Password: ")
		if err != nil {
			return err
		}
		confirm, err := promptPassword("Confirm password: ")
		if err != nil {
			return err
		}

		profile := domain.Profile{Username: username, Email: email, Password: password}
		if errs := domain.ValidateRegistration(profile, confirm); errs != nil {
			return errs
		}
		return a.session.Register(cmd.Context(), profile)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored session",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(consoleNotifier())
		if err != nil {
			return err
		}
		defer a.Close()

		if current := a.session.Current(); current.Authenticated() && a.cache != nil {
			_ = a.cache.Purge(cmd.Context(), current.Username)
		}
		a.session.Logout()
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show who is logged in",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(consoleNotifier())
		if err != nil {
			return err
		}
		defer a.Close()

		current := a.session.Current()
		if !current.Authenticated() {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Println(current.Username)
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "username (prompted when omitted)")
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "username (prompted when omitted)")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "email (prompted when omitted)")
}

func promptLine(prompt string) (string, error) {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
