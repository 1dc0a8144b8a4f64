package bootstrap

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitialize(t *testing.T) {
	dir := Initialize(zerolog.Nop())

	require.Equal(t, 4, dir.Len())

	tests := []struct {
		username string
		pin      int
		owner    string
		locale   string
		balance  string
	}{
		{"js", 1111, "Jonas Schmedtmann", "en-US", "3840"},
		{"jd", 2222, "Jessica Davis", "uk-UA", "11720"},
		{"stw", 3333, "Steven Thomas Williams", "de-DE", "10"},
		{"ss", 4444, "Sarah Smith", "en-GB", "2270"},
	}

	for _, tt := range tests {
		t.Run(tt.username, func(t *testing.T) {
			acc, err := dir.FindByCredentials(tt.username, tt.pin)
			require.NoError(t, err)
			assert.Equal(t, tt.owner, acc.Owner)
			assert.Equal(t, tt.locale, acc.Locale)

			total := acc.Movements[0].Amount
			for _, m := range acc.Movements[1:] {
				total = total.Add(m.Amount)
			}
			assert.Equal(t, tt.balance, total.String())
		})
	}
}

func TestSeedAccounts_FreshCopies(t *testing.T) {
	a := SeedAccounts()
	b := SeedAccounts()

	require.Len(t, a, 4)
	assert.NotEqual(t, a[0].ID, b[0].ID)

	a[0].Movements = a[0].Movements[:1]
	assert.Len(t, b[0].Movements, 8)
}
