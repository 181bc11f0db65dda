package pkg

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopPublisher(t *testing.T) {
	var p EventPublisher = NopPublisher{}

	assert.NoError(t, p.Publish(context.Background(), SubjectTableUploaded, map[string]string{"a": "b"}))
	p.Close()
}

func TestNewNATSPublisher_Unreachable(t *testing.T) {
	_, err := NewNATSPublisher("nats://127.0.0.1:1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nats connect")
}
