package telemetry_test

import (
	"context"
	"errors"
	"testing"

	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/adapters/telemetry"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/domain"
	"github.com/FrancisRussell/rustup-toolchain-manifest/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()

	ctx, vertex := tel.Record(context.Background(), "resolve x86_64-unknown-linux-gnu")
	require.NotNil(t, vertex)

	fromCtx, ok := ports.VertexFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, vertex, fromCtx)

	n, err := vertex.Stdout().Write([]byte("ignored"))
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	vertex.Log(domain.LogLevelInfo, "ignored")
	vertex.Cached()
	vertex.Complete(errors.New("ignored"))

	assert.NoError(t, tel.Close())
}
