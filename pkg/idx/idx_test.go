package idx_test

import (
	"testing"
	"time"

	"github.com/boardsync/taskboard/pkg/idx"
	"github.com/stretchr/testify/require"
)

func TestNewProducesValidIDs(t *testing.T) {
	t.Parallel()

	id := idx.New()
	require.False(t, id.IsZero())

	parsed, err := idx.Parse(id.String())
	require.NoError(t, err)
	require.Equal(t, id, parsed)
}

func TestNewIsMonotonicWithinMillisecond(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	a := idx.NewAt(at)
	b := idx.NewAt(at)

	require.Less(t, a.String(), b.String())
}

func TestParseRejectsGarbage(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "   ", "not-a-ulid", "0000"} {
		_, err := idx.Parse(input)
		require.ErrorIs(t, err, idx.ErrInvalid, "input %q", input)
	}
}

func TestTimeRoundTrip(t *testing.T) {
	t.Parallel()

	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	id := idx.NewAt(at)
	require.WithinDuration(t, at, id.Time(), time.Millisecond)

	require.True(t, idx.Zero.Time().IsZero())
}
