package main

import (
	"bytes"
	"chat-relay/domain"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
)

func createAccountCmd() *cobra.Command {
	var (
		url      string
		username string
		admin    bool
	)

	cmd := &cobra.Command{
		Use:   "create-account",
		Short: "Create an identity through the relay",
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := createAccount(&http.Client{Timeout: 10 * time.Second}, url,
				domain.CreateAccountCommand{Username: username, Admin: admin})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", color.Green.Sprint("created"), id)
			return nil
		},
	}

	cmd.Flags().StringVar(&url, "url", "http://localhost:8080", "Relay base URL")
	cmd.Flags().StringVar(&username, "username", "", "Username, 3 to 32 characters")
	cmd.Flags().BoolVar(&admin, "admin", false, "Grant admin rights")
	_ = cmd.MarkFlagRequired("username")
	return cmd
}

// createAccount posts to /api/new_account and returns the new identity id.
func createAccount(httpClient *http.Client, baseURL string, cmd domain.CreateAccountCommand) (string, error) {
	body, err := json.Marshal(cmd)
	if err != nil {
		return "", err
	}
	resp, err := httpClient.Post(strings.TrimSuffix(baseURL, "/")+"/api/new_account", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("calling relay: %w", err)
	}
	defer resp.Body.Close()

	text, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("relay answered %d: %s", resp.StatusCode, strings.TrimSpace(string(text)))
	}
	return string(text), nil
}
