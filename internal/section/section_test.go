package section

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var feedKeys = []string{"technology", "business", "science", "health"}

func TestNewValidates(t *testing.T) {
	_, err := New("feed", []string{}, "technology")
	require.ErrorIs(t, err, ErrEmptyKeySet)

	_, err = New("feed", []string{"a", "b", "a"}, "a")
	require.ErrorIs(t, err, ErrDuplicateKey)

	_, err = New("feed", feedKeys, "sports")
	require.ErrorIs(t, err, ErrInvalidFilterKey)

	f, err := New("feed", feedKeys, "science")
	require.NoError(t, err)
	require.Equal(t, "science", f.Active())
	require.Equal(t, "feed", f.Name())
}

func TestSetActiveMembers(t *testing.T) {
	f, err := New("feed", feedKeys, "technology")
	require.NoError(t, err)

	for _, k := range feedKeys {
		next, err := f.SetActive(k)
		require.NoError(t, err)
		require.Equal(t, k, next.Active())
	}
}

func TestSetActiveNonMemberLeavesStateUnchanged(t *testing.T) {
	f, err := New("global", []string{"trending", "editors"}, "editors")
	require.NoError(t, err)

	for _, k := range []string{"", "technology", "Trending", "latest"} {
		next, err := f.SetActive(k)
		require.ErrorIs(t, err, ErrInvalidFilterKey)
		require.Equal(t, "editors", next.Active())
	}
}

func TestFiltersAreIndependent(t *testing.T) {
	feed, err := New("feed", feedKeys, "technology")
	require.NoError(t, err)
	global, err := New("global", []string{"trending", "editors"}, "trending")
	require.NoError(t, err)

	feed, err = feed.SetActive("health")
	require.NoError(t, err)

	require.Equal(t, "health", feed.Active())
	require.Equal(t, "trending", global.Active())
}

func TestNextPrevWrap(t *testing.T) {
	f, err := New("feed", feedKeys, "health")
	require.NoError(t, err)

	require.Equal(t, "technology", f.Next().Active())
	require.Equal(t, "science", f.Prev().Active())

	f, err = f.SetActive("technology")
	require.NoError(t, err)
	require.Equal(t, "health", f.Prev().Active())
}

func TestKeysIsCopy(t *testing.T) {
	keys := []string{"a", "b"}
	f, err := New("x", keys, "a")
	require.NoError(t, err)

	keys[0] = "z"
	require.True(t, f.Contains("a"))

	got := f.Keys()
	got[1] = "z"
	require.Equal(t, []string{"a", "b"}, f.Keys())
}

func TestGenericKeys(t *testing.T) {
	f, err := New("pages", []int{1, 2, 3}, 2)
	require.NoError(t, err)

	f, err = f.SetActive(3)
	require.NoError(t, err)
	require.Equal(t, 3, f.Active())

	_, err = f.SetActive(4)
	require.ErrorIs(t, err, ErrInvalidFilterKey)
}
