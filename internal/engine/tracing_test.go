package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTracingDisabledWithoutEndpoint(t *testing.T) {
	tr, err := NewTracing(context.Background(), TracingConfig{ServiceName: "test"})
	require.NoError(t, err)
	assert.Nil(t, tr)

	tracer := tr.Tracer()
	require.NotNil(t, tracer)
	_, span := tracer.Start(context.Background(), "op")
	span.End()
	assert.NoError(t, tr.Shutdown(context.Background()))
}
