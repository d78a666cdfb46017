package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	authapp "github.com/qkart/storefront/internal/auth/app"
	"github.com/qkart/storefront/pkg/httpx"
)

func newRegisterCmd() *cobra.Command {
	var username, password, confirm string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := newStorefront()
			if err != nil {
				return err
			}

			if err := sf.auth.Register(cmd.Context(), username, password, confirm); err != nil {
				var vErr *authapp.ValidationError
				if errors.As(err, &vErr) {
					return errors.New(vErr.Message)
				}
				return errors.New(httpx.UserMessage(err))
			}

			fmt.Println("Registered Successfully")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username (min 6 characters)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password (min 6 characters)")
	cmd.Flags().StringVarP(&confirm, "confirm", "c", "", "password confirmation")
	return cmd
}

func newLoginCmd() *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := newStorefront()
			if err != nil {
				return err
			}

			sess, err := sf.auth.Login(cmd.Context(), username, password)
			if err != nil {
				var vErr *authapp.ValidationError
				if errors.As(err, &vErr) {
					return errors.New(vErr.Message)
				}
				return errors.New(httpx.UserMessage(err))
			}

			fmt.Printf("Logged in as %s (balance $%d)\n", sess.Username, sess.Balance)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "password")
	return cmd
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			sf, err := newStorefront()
			if err != nil {
				return err
			}
			if err := sf.auth.Logout(); err != nil {
				return err
			}
			fmt.Println("Logged out")
			return nil
		},
	}
}
