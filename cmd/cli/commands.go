package main

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var (
	roundID string
	dryRun  bool
)

func init() {
	scoreCmd.Flags().StringVar(&roundID, "round", "", "The round ID")
	scoreCmd.MarkFlagRequired("round")
	pickupCmd.Flags().StringVar(&roundID, "round", "", "The round ID")
	pickupCmd.MarkFlagRequired("round")
	leaderboardCmd.Flags().StringVar(&roundID, "round", "", "The round ID")
	leaderboardCmd.MarkFlagRequired("round")
	finishCmd.Flags().StringVar(&roundID, "round", "", "The round ID")
	finishCmd.MarkFlagRequired("round")
	finishCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Preview the final standings without freezing the round")

	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(roundsCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(pickupCmd)
	rootCmd.AddCommand(leaderboardCmd)
	rootCmd.AddCommand(finishCmd)
	rootCmd.AddCommand(metricsCmd)
}

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check the health of the server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/health")
	},
}

var roundsCmd = &cobra.Command{
	Use:   "rounds",
	Short: "List the rounds in the store",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/rounds")
	},
}

var scoreCmd = &cobra.Command{
	Use:   "score <participant> <hole> <strokes>",
	Short: "Record a score for a participant on a hole",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		hole, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid hole number %q: %w", args[1], err)
		}
		strokes, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid stroke count %q: %w", args[2], err)
		}
		body := fmt.Sprintf(`{"round_id":%q,"participant_id":%q,"hole":%d,"strokes":%d,"author":%q}`,
			roundID, args[0], hole, strokes, args[0])
		return performPostRequest("/score", body)
	},
}

var pickupCmd = &cobra.Command{
	Use:   "pickup <participant> <hole>",
	Short: "Mark a hole as picked up for a participant",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		hole, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid hole number %q: %w", args[1], err)
		}
		body := fmt.Sprintf(`{"round_id":%q,"participant_id":%q,"hole":%d,"author":%q}`,
			roundID, args[0], hole, args[0])
		return performPostRequest("/pickup", body)
	},
}

var leaderboardCmd = &cobra.Command{
	Use:   "leaderboard",
	Short: "Get the leaderboard for a round",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/leaderboard?id=" + url.QueryEscape(roundID))
	},
}

var finishCmd = &cobra.Command{
	Use:   "finish",
	Short: "Finish a round and post the final standings",
	RunE: func(cmd *cobra.Command, args []string) error {
		endpoint := "/finish?id=" + url.QueryEscape(roundID)
		if dryRun {
			endpoint += "&dry_run=true"
		}
		return performPostRequest(endpoint, "")
	},
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Get application metrics",
	RunE: func(cmd *cobra.Command, args []string) error {
		return performGetRequest("/metrics")
	},
}

func performGetRequest(endpoint string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func performPostRequest(endpoint, body string) error {
	url := host + endpoint
	fmt.Printf("Making request to %s\n", url)

	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to make request: %w", err)
	}
	defer resp.Body.Close()

	return printResponse(resp)
}

func printResponse(resp *http.Response) error {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	fmt.Printf("Status Code: %d\n", resp.StatusCode)
	fmt.Println("Response Body:")
	fmt.Println(string(body))

	return nil
}
