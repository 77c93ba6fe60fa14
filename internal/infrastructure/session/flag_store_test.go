package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlagStore(t *testing.T) {
	store := NewFlagStore()

	assert.False(t, store.Get("popup_seen"))

	store.Set("popup_seen")
	assert.True(t, store.Get("popup_seen"))
	assert.False(t, store.Get("other"))

	// setting twice is a no-op
	store.Set("popup_seen")
	assert.True(t, store.Get("popup_seen"))
}
