package selection

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abelbrown/newsai/internal/catalog"
)

func seeded(t *testing.T, ids ...string) Selection {
	t.Helper()
	s, err := New(catalog.Default(), ids...)
	require.NoError(t, err)
	return s
}

func TestAddAppendsAtEnd(t *testing.T) {
	s := seeded(t, "technology")

	s, err := s.Add("science")
	require.NoError(t, err)
	require.Equal(t, []string{"technology", "science"}, s.List())
}

func TestAddFullSelectionRejected(t *testing.T) {
	s := seeded(t, "technology", "business", "science", "health")

	next, err := s.Add("sports")
	require.ErrorIs(t, err, ErrCapacityExceeded)
	require.Equal(t, []string{"technology", "business", "science", "health"}, next.List())
	require.Equal(t, s.List(), next.List())
}

func TestAddDuplicate(t *testing.T) {
	s := seeded(t, "technology", "business")

	_, err := s.Add("business")
	require.ErrorIs(t, err, ErrDuplicateSelection)
}

func TestAddDuplicateReportedBeforeCapacity(t *testing.T) {
	s := seeded(t, "technology", "business", "science", "health")

	_, err := s.Add("health")
	require.ErrorIs(t, err, ErrDuplicateSelection)
}

func TestAddUnknown(t *testing.T) {
	s := seeded(t)

	_, err := s.Add("astrology")
	require.ErrorIs(t, err, ErrUnknownCategory)
	require.Equal(t, 0, s.Len())
}

func TestRemoveThenReAddGoesToEnd(t *testing.T) {
	s := seeded(t, "technology", "business")

	s = s.Remove("business")
	require.Equal(t, []string{"technology"}, s.List())

	s, err := s.Add("business")
	require.NoError(t, err)
	require.Equal(t, []string{"technology", "business"}, s.List())
}

func TestRemovePreservesOrder(t *testing.T) {
	s := seeded(t, "technology", "business", "science", "health")

	s = s.Remove("business")
	require.Equal(t, []string{"technology", "science", "health"}, s.List())
}

func TestRemoveAbsentIsNoop(t *testing.T) {
	s := seeded(t, "technology")

	require.Equal(t, []string{"technology"}, s.Remove("sports").List())
}

func TestOperationsDoNotMutateReceiver(t *testing.T) {
	s := seeded(t, "technology", "business")

	_, _ = s.Add("science")
	_ = s.Remove("technology")
	_, _ = s.Reorder([]string{"business", "technology"})

	require.Equal(t, []string{"technology", "business"}, s.List())
}

func TestReorder(t *testing.T) {
	s := seeded(t, "technology", "business", "science", "health")
	perm := []string{"health", "science", "technology", "business"}

	next, err := s.Reorder(perm)
	require.NoError(t, err)
	require.Equal(t, perm, next.List())
	require.ElementsMatch(t, s.List(), next.List())
}

func TestReorderRejectsNonPermutations(t *testing.T) {
	s := seeded(t, "technology", "business", "science")

	tests := []struct {
		name string
		seq  []string
	}{
		{"missing element", []string{"technology", "business"}},
		{"extra element", []string{"technology", "business", "science", "health"}},
		{"substituted element", []string{"technology", "business", "health"}},
		{"repeated element", []string{"technology", "technology", "science"}},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := s.Reorder(tt.seq)
			require.ErrorIs(t, err, ErrInvalidPermutation)
			require.Equal(t, s.List(), next.List())
		})
	}
}

func TestReorderCopiesInput(t *testing.T) {
	s := seeded(t, "technology", "business")
	perm := []string{"business", "technology"}

	s, err := s.Reorder(perm)
	require.NoError(t, err)
	perm[0] = "health"
	require.Equal(t, []string{"business", "technology"}, s.List())
}

func TestMove(t *testing.T) {
	s := seeded(t, "technology", "business", "science", "health")

	tests := []struct {
		name  string
		id    string
		delta int
		want  []string
	}{
		{"up one", "science", -1, []string{"technology", "science", "business", "health"}},
		{"down one", "technology", 1, []string{"business", "technology", "science", "health"}},
		{"clamped to front", "health", -10, []string{"health", "technology", "business", "science"}},
		{"clamped to back", "technology", 10, []string{"business", "science", "health", "technology"}},
		{"no-op at edge", "technology", -1, []string{"technology", "business", "science", "health"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := s.Move(tt.id, tt.delta)
			require.NoError(t, err)
			require.Equal(t, tt.want, next.List())
		})
	}

	_, err := s.Move("sports", 1)
	require.ErrorIs(t, err, ErrInvalidPermutation)
}

func TestNewRejectsBadSeed(t *testing.T) {
	_, err := New(catalog.Default(), "technology", "technology")
	require.ErrorIs(t, err, ErrDuplicateSelection)

	_, err = New(catalog.Default(), "technology", "business", "science", "health", "sports")
	require.ErrorIs(t, err, ErrCapacityExceeded)

	_, err = New(catalog.Default(), "tech")
	require.ErrorIs(t, err, ErrUnknownCategory)
}

func TestAvailableExcludesSelected(t *testing.T) {
	s := seeded(t, "technology", "business")

	avail := s.Available()
	require.Len(t, avail, 10)
	for _, cat := range avail {
		require.False(t, s.Contains(cat.ID))
	}
}

func TestCategoriesResolvesInOrder(t *testing.T) {
	s := seeded(t, "science", "technology")

	cats := s.Categories()
	require.Len(t, cats, 2)
	require.Equal(t, "Science", cats[0].Name)
	require.Equal(t, "Technology", cats[1].Name)
}

// Every sequence of adds keeps the selection bounded and duplicate-free.
func TestAddSequencesKeepInvariants(t *testing.T) {
	cat := catalog.Default()
	ids := append(cat.IDs(), "technology", "bogus", "science", "food")

	s, err := New(cat)
	require.NoError(t, err)

	for _, id := range ids {
		s, _ = s.Add(id)
		require.LessOrEqual(t, s.Len(), MaxSelected)

		seen := map[string]bool{}
		for _, cur := range s.List() {
			require.False(t, seen[cur], "duplicate %q", cur)
			require.True(t, cat.Contains(cur))
			seen[cur] = true
		}
	}
	require.True(t, s.Full())
}
