package logger_test

import (
	"context"
	"testing"

	"gympass/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetup(t *testing.T) {
	for _, environment := range []string{
		logger.DevelopmentEnvironment,
		logger.ProductionEnvironment,
	} {
		t.Run(environment, func(t *testing.T) {
			require.NotPanics(t, func() {
				logger.Setup(environment)
			})
			require.NotNil(t, logger.Get(context.Background()))
		})
	}
}

func TestGet(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := context.Background()
	require.NotNil(t, logger.Get(ctx), "should return default logger when context has no logger")

	custom, _ := zap.NewDevelopment()
	ctx = logger.WithLogger(ctx, custom)
	require.Equal(t, custom, logger.Get(ctx), "should return logger from context")
}

func TestWithFields(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	ctx := logger.WithFields(context.Background(), zap.String("component", "test"))
	require.NotNil(t, logger.Get(ctx))
	require.NotEqual(t, logger.Get(context.Background()), logger.Get(ctx))
}
