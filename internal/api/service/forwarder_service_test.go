package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForwarderService_Forward(t *testing.T) {
	chat := &fakeChat{replies: []string{"Paris is the capital of France."}}
	s := NewForwarderService(chat)

	reply, err := s.Forward(context.Background(), "  What is the capital of France?  ")
	require.NoError(t, err)

	assert.Equal(t, "Paris is the capital of France.", reply)
	require.Len(t, chat.prompts, 1)
	assert.Equal(t, "  What is the capital of France?  ", chat.prompts[0])
}

func TestForwarderService_Forward_EmptyPrompt(t *testing.T) {
	chat := &fakeChat{replies: []string{"How can I help?"}}
	s := NewForwarderService(chat)

	reply, err := s.Forward(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "How can I help?", reply)
}

func TestForwarderService_Forward_UpstreamError(t *testing.T) {
	s := NewForwarderService(&fakeChat{err: errors.New("invalid api key")})

	_, err := s.Forward(context.Background(), "hello")
	require.Error(t, err)
	assert.Equal(t, KindUpstream, KindOf(err))
	assert.Equal(t, "invalid api key", err.Error())
}

func TestKindOf(t *testing.T) {
	base := errors.New("boom")

	assert.Equal(t, KindParse, KindOf(newError(KindParse, base)))
	assert.Equal(t, KindValidation, KindOf(fmt.Errorf("wrapped: %w", newError(KindValidation, base))))
	assert.Equal(t, KindInternal, KindOf(base))
	assert.ErrorIs(t, newError(KindUpstream, base), base)
}
