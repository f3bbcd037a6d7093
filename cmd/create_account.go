// Copyright 2026 GuestPulse Ltd.
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var (
	caFirstName   string
	caLastName    string
	caEmail       string
	caCompanyName string
	caPhone       string
	caStartTrial  bool
	caTrialDays   int
)

// createAccountCmd drives the provisioning endpoint from the terminal.
var createAccountCmd = &cobra.Command{
	Use:   "create-account",
	Short: "Provision a new customer account",
	Long:  `Create an account, its master user and a password-setup invitation via the admin API.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		payload := map[string]interface{}{
			"firstName":   caFirstName,
			"lastName":    caLastName,
			"email":       caEmail,
			"companyName": caCompanyName,
		}
		if caPhone != "" {
			payload["phone"] = caPhone
		}
		if caStartTrial {
			payload["startTrial"] = true
			payload["trialDays"] = caTrialDays
		}

		body, err := json.Marshal(payload)
		if err != nil {
			return err
		}

		endpoint := strings.TrimSuffix(httpEndpoint, "/") + "/api/admin/create-account"
		req, err := http.NewRequestWithContext(cmd.Context(), http.MethodPost, endpoint, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		if bearerToken != "" {
			req.Header.Set("Authorization", "Bearer "+bearerToken)
		}

		client := &http.Client{Timeout: 30 * time.Second}
		resp, err := client.Do(req)
		if err != nil {
			return fmt.Errorf("request failed: %w", err)
		}
		defer resp.Body.Close()

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("failed to read response body: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("api error (status %d): %s", resp.StatusCode, string(respBody))
		}

		var pretty bytes.Buffer
		if err := json.Indent(&pretty, respBody, "", "  "); err != nil {
			fmt.Fprintln(cmd.OutOrStdout(), string(respBody))
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(createAccountCmd)

	createAccountCmd.Flags().StringVar(&caFirstName, "first-name", "", "First name of the master user")
	createAccountCmd.Flags().StringVar(&caLastName, "last-name", "", "Last name of the master user")
	createAccountCmd.Flags().StringVar(&caEmail, "email", "", "Email of the master user")
	createAccountCmd.Flags().StringVar(&caCompanyName, "company-name", "", "Company name for the account")
	createAccountCmd.Flags().StringVar(&caPhone, "phone", "", "Contact phone number")
	createAccountCmd.Flags().BoolVar(&caStartTrial, "start-trial", false, "Start a trial for the account")
	createAccountCmd.Flags().IntVar(&caTrialDays, "trial-days", 14, "Trial length in days")

	_ = createAccountCmd.MarkFlagRequired("first-name")
	_ = createAccountCmd.MarkFlagRequired("last-name")
	_ = createAccountCmd.MarkFlagRequired("email")
	_ = createAccountCmd.MarkFlagRequired("company-name")
}
