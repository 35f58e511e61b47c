package prompt

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type round struct {
	value string
	more  bool
}

func scripted(rounds ...round) Round[string] {
	return func(n int) (string, bool, error) {
		return rounds[n].value, rounds[n].more, nil
	}
}

func identity(s string) string { return s }

func TestCollectDeduplicates(t *testing.T) {
	collected, err := Collect(scripted(
		round{"a", true},
		round{"b", true},
		round{"a", false},
	), identity)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, collected)
}

func TestCollectPreservesFirstSeenOrder(t *testing.T) {
	collected, err := Collect(scripted(
		round{"c", true},
		round{"a", true},
		round{"c", true},
		round{"b", false},
	), identity)

	require.NoError(t, err)
	assert.Equal(t, []string{"c", "a", "b"}, collected)
}

func TestCollectStopsOnFirstRound(t *testing.T) {
	rounds := 0
	collected, err := Collect(func(n int) (string, bool, error) {
		rounds++
		return "only", false, nil
	}, identity)

	require.NoError(t, err)
	assert.Equal(t, []string{"only"}, collected)
	assert.Equal(t, 1, rounds, "the loop must not run again after a no-continue round")
}

func TestCollectDuplicateStillHonorsContinue(t *testing.T) {
	// The duplicate in the middle is dropped but its continue signal keeps
	// the loop alive.
	collected, err := Collect(scripted(
		round{"a", true},
		round{"a", true},
		round{"b", false},
	), identity)

	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, collected)
}

func TestCollectPropagatesError(t *testing.T) {
	boom := errors.New("prompt failed")

	collected, err := Collect(func(n int) (string, bool, error) {
		if n == 1 {
			return "", false, boom
		}
		return "a", true, nil
	}, identity)

	assert.ErrorIs(t, err, boom)
	assert.Nil(t, collected)
}
