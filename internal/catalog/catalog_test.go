package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	c := Default()

	require.Equal(t, 12, c.Len())
	require.Equal(t, "technology", c.IDs()[0])
	require.True(t, c.Contains("sports"))
	require.False(t, c.Contains("tech"))

	cat, ok := c.Lookup("health")
	require.True(t, ok)
	require.Equal(t, "Health", cat.Name)
	require.Equal(t, "red", cat.Accent)
}

func TestNewRejectsInvalidInput(t *testing.T) {
	_, err := New(nil)
	require.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = New([]Category{{ID: "  "}})
	require.ErrorIs(t, err, ErrInvalidCategory)

	_, err = New([]Category{{ID: "a"}, {ID: "b"}, {ID: "a"}})
	require.ErrorIs(t, err, ErrDuplicateCategory)
}

func TestNewDefaultsNameToID(t *testing.T) {
	c, err := New([]Category{{ID: "local"}})
	require.NoError(t, err)

	cat, ok := c.Lookup("local")
	require.True(t, ok)
	require.Equal(t, "local", cat.Name)
}

func TestAllReturnsCopy(t *testing.T) {
	c := Default()
	all := c.All()
	all[0].Name = "mutated"

	cat, _ := c.Lookup("technology")
	require.Equal(t, "Technology", cat.Name)
}

func TestSuggest(t *testing.T) {
	c := Default()

	tests := []struct {
		query string
		want  string
		ok    bool
	}{
		{"technology", "technology", true},
		{"Technology", "technology", true},
		{"tehcnology", "technology", true},
		{"sprots", "sports", true},
		{"helth", "health", true},
		{"zzzzzzzz", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := c.Suggest(tt.query)
			require.Equal(t, tt.ok, ok)
			if ok {
				require.Equal(t, tt.want, got.ID)
			}
		})
	}
}
