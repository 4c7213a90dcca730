package telemetry_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/jute/internal/adapters/telemetry"
)

func TestNoOp(t *testing.T) {
	tel := telemetry.NewNoOp()
	ctx := context.Background()

	gotCtx, vertex := tel.Record(ctx, "gradle build")
	assert.Equal(t, ctx, gotCtx)

	n, err := vertex.Stdout().Write([]byte("BUILD SUCCESSFUL\n"))
	require.NoError(t, err)
	assert.Equal(t, 17, n)

	_, err = vertex.Stderr().Write([]byte("warning\n"))
	require.NoError(t, err)

	vertex.Complete(nil)
	require.NoError(t, tel.Persist(t.TempDir()+"/journal.jsonl"))
	require.NoError(t, tel.Close())
}
