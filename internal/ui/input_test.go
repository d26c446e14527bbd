package ui

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPressedKeysInKeyOrder(t *testing.T) {
	down := map[Key]bool{KeyH: true, KeyEscape: true, KeyR: true}
	for range 10 {
		got := PressedKeys(func(k Key) bool { return down[k] })
		require.Equal(t, []Key{KeyEscape, KeyR, KeyH}, got)
	}

	require.Empty(t, PressedKeys(func(Key) bool { return false }))
}

func TestJustPressed(t *testing.T) {
	in := Input{Pressed: []Key{KeySpace, KeyC}}
	require.True(t, in.JustPressed(KeyC))
	require.False(t, in.JustPressed(KeyR))
}
