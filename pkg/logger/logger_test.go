package logger_test

import (
	"context"
	"testing"
	"webaudit/pkg/logger"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGet_DefaultIsNeverNil(t *testing.T) {
	// before and after Setup, Get must hand out a usable logger
	require.NotNil(t, logger.Get(context.Background()))

	for _, env := range []string{logger.DevelopmentEnvironment, logger.ProductionEnvironment, "staging"} {
		logger.Setup(env)
		require.NotNil(t, logger.Get(context.Background()), env)
	}
}

func TestGet_PrefersContextLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)

	custom := zap.NewNop()
	ctx := logger.WithLogger(context.Background(), custom)

	require.Same(t, custom, logger.Get(ctx))
	require.NotSame(t, custom, logger.Get(context.Background()))
}

func TestWithFields_DerivesChildLogger(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	ctx := context.Background()

	derived := logger.WithFields(ctx, zap.String("request_id", "abc"))

	require.NotSame(t, logger.Get(ctx), logger.Get(derived))
}

func TestIsDebug(t *testing.T) {
	logger.Setup(logger.DevelopmentEnvironment)
	require.True(t, logger.IsDebug(context.Background()))

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	infoLogger, err := cfg.Build()
	require.NoError(t, err)

	ctx := logger.WithLogger(context.Background(), infoLogger)
	require.False(t, logger.IsDebug(ctx))
}

func TestLevelHelpers_DoNotPanic(t *testing.T) {
	logger.Setup(logger.ProductionEnvironment)
	ctx := context.Background()

	require.NotPanics(t, func() {
		logger.Debug(ctx, "debug", zap.String("k", "v"))
		logger.Info(ctx, "info", zap.String("k", "v"))
		logger.Warn(ctx, "warn", zap.String("k", "v"))
		logger.Error(ctx, "error", zap.String("k", "v"))
	})
}
