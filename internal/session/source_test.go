package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSource_State(t *testing.T) {
	s := Source{}

	state := s.State()
	assert.NotEmpty(t, state, "Empty state generated")
	assert.Len(t, state, 64)
}

func TestSource_StateIsPerCall(t *testing.T) {
	s := Source{}

	assert.NotEqual(t, s.State(), s.State(), "states must be unique per session")
}
