package logging_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zhelvis/companiesdb/pkg/logging"
)

func TestContextFunctions(t *testing.T) {
	t.Run("WithDocument adds document to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithDocument(ctx, "companies.json")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithStage adds stage to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithStage(ctx, "load")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("WithOperation adds operation to context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithOperation(ctx, "build")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("FromContext returns default for plain context", func(t *testing.T) {
		logger := logging.FromContext(context.Background())
		assert.NotNil(t, logger)
	})

	t.Run("Ctx extracts logger from context", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithStage(ctx, "export")

		logger := logging.Ctx(ctx)
		assert.NotNil(t, logger)
	})

	t.Run("chaining context functions", func(t *testing.T) {
		ctx := context.Background()
		ctx = logging.WithStage(ctx, "merge")
		ctx = logging.WithDocument(ctx, "trackers.json")
		ctx = logging.WithOperation(ctx, "build")

		logger := logging.FromContext(ctx)
		assert.NotNil(t, logger)
	})
}
