package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rhq-project/rhq-in-go/pkg/config"
)

// waitCmd represents the wait command
var waitCmd = &cobra.Command{
	Use:   "wait",
	Short: "Wait for the RHQ server to be ready",
	Long: `Wait for the RHQ server to be ready by polling its health endpoint.

The server is ready once /health answers 200, which requires a reachable
database with a clean schema.

Example:
  rhqctl wait
  rhqctl wait --url http://rhq:7080 --retries 60`,
	Run: func(cmd *cobra.Command, args []string) {
		url, _ := cmd.Flags().GetString("url")
		retries, _ := cmd.Flags().GetInt("retries")
		interval, _ := cmd.Flags().GetDuration("interval")

		if url == "" {
			url = fmt.Sprintf("http://localhost:%d", config.Get().Port)
		}

		fmt.Println("Waiting for RHQ to be ready...")
		if err := waitForServer(cmd.Context(), cmd.OutOrStdout(), url, retries, interval); err != nil {
			fmt.Fprintf(os.Stderr, "Server did not become ready: %v\n", err)
			os.Exit(1)
		}

		fmt.Println("RHQ server is ready")
	},
}

func init() {
	rootCmd.AddCommand(waitCmd)
	waitCmd.Flags().String("url", "", "Base URL of the server (default http://localhost:<port>)")
	waitCmd.Flags().IntP("retries", "r", 90, "Number of retries")
	waitCmd.Flags().Duration("interval", time.Second, "Delay between retries")
}

// waitForServer polls baseURL/health until it answers 200, printing a dot
// for every failed attempt.
func waitForServer(ctx context.Context, progress io.Writer, baseURL string, retries int, interval time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}
	client := &http.Client{Timeout: 2 * time.Second}

	for i := 0; i < retries; i++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
		if err != nil {
			return err
		}
		resp, err := client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				fmt.Fprintln(progress)
				return nil
			}
		}

		fmt.Fprint(progress, ".")
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}

	fmt.Fprintln(progress)
	return fmt.Errorf("not ready after %d attempts", retries)
}
