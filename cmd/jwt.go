package main

import (
	"context"
	"fmt"
	"time"

	"gympass/internal/api/auth"
	"gympass/internal/config"
	"gympass/pkg/domain"
	"gympass/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed token
// for a given subject (user ID) and TTL using the configured secret.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates JWT token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			subject, _ := cmd.Flags().GetString("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(context.Background(), "could not parse subject as user ID", zap.Error(err))
			}

			signed, err := auth.Sign(domain.UserID(userID), auth.Config{
				Secret: cfg.JWT.Secret,
				TTL:    TTL,
			}, time.Now())
			if err != nil {
				logger.Fatal(context.Background(), "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
