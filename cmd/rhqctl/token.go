package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/rhq-project/rhq-in-go/pkg/config"
	"github.com/rhq-project/rhq-in-go/pkg/server/middleware"
	"github.com/rhq-project/rhq-in-go/pkg/server/store"
	gormstore "github.com/rhq-project/rhq-in-go/pkg/server/store/gorm"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Manage API bearer tokens",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'token' requires a subcommand (issue)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

var tokenIssueCmd = &cobra.Command{
	Use:   "issue <subject>",
	Short: "Issue a bearer token for a subject",
	Long: `Issue a bearer token for a subject without a password.

The token is signed with the configured jwt_secret, so it is accepted by
every server sharing that secret.

Example:
  rhqctl token issue rhqadmin
  rhqctl token issue rhqadmin --ttl 1h`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ttl, _ := cmd.Flags().GetDuration("ttl")
		cfg := config.Get()
		if ttl == 0 {
			ttl = cfg.TokenLifetime()
		}

		db, err := connect(cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		token, expires, err := issueToken(gormstore.NewSubjectsStore(db), args[0], []byte(cfg.JWTSecret), ttl, time.Now())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, "expires:", expires.Format(time.RFC3339))
		fmt.Println(token)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.AddCommand(tokenIssueCmd)
	tokenIssueCmd.Flags().Duration("ttl", 0, "token lifetime (default token_ttl)")
}

func issueToken(subjects store.SubjectsStore, name string, secret []byte, ttl time.Duration, now time.Time) (string, time.Time, error) {
	subject, err := subjects.FetchSubjectByName(name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", time.Time{}, fmt.Errorf("subject %q does not exist", name)
		}
		return "", time.Time{}, err
	}
	if !subject.FactiveFlag {
		return "", time.Time{}, fmt.Errorf("subject %q is disabled", name)
	}
	return middleware.IssueToken(secret, subject, ttl, now)
}
