package root

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	traiterr "github.com/KirkDiggler/talent-traits/internal/errors"
)

func TestParseRanks(t *testing.T) {
	ledger, err := parseRanks([]string{"Armor=3", "fire = 1 "})
	require.NoError(t, err)

	assert.Equal(t, 3, ledger.Rank("armor"))
	assert.Equal(t, 1, ledger.Rank("fire"))
}

func TestParseRanks_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "missing separator", args: []string{"armor"}},
		{name: "empty key", args: []string{" =3"}},
		{name: "non-numeric rank", args: []string{"armor=high"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseRanks(tt.args)
			assert.True(t, traiterr.IsInvalidArgument(err))
		})
	}
}
