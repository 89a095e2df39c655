package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	t.Run("first match wins", func(t *testing.T) {
		require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	})

	t.Run("missing item", func(t *testing.T) {
		require.Equal(t, -1, FindIndex([]int{1, 2, 3}, 4))
		require.Equal(t, -1, FindIndex(nil, 4))
	})
}
