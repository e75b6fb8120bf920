package seed

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func TestParse(t *testing.T) {
	t.Run("uses numeric phrases verbatim", func(t *testing.T) {
		require.Equal(t, uint64(42), Parse("42"))
		require.Equal(t, uint64(0), Parse("0"))
		require.Equal(t, uint64(18446744073709551615), Parse("18446744073709551615"))
	})

	t.Run("hashes text phrases deterministically", func(t *testing.T) {
		require.Equal(t, Parse("stat540-2026"), Parse("stat540-2026"))
		require.NotEqual(t, Parse("stat540-2026"), Parse("stat540-2027"))
		require.Equal(t, xxh3.HashString("stat540-2026"), Parse("stat540-2026"))
	})

	t.Run("hashes phrases that only look numeric", func(t *testing.T) {
		// Negative and overflowing values fall back to hashing.
		require.Equal(t, xxh3.HashString("-1"), Parse("-1"))
		require.Equal(t, xxh3.HashString("99999999999999999999"), Parse("99999999999999999999"))
	})
}

func TestRandom(t *testing.T) {
	seen := make(map[uint64]struct{})
	for range 4 {
		seen[Random()] = struct{}{}
	}

	require.Greater(t, len(seen), 1)
}
