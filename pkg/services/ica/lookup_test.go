package ica

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	t.Run("known identifiers", func(t *testing.T) {
		assert.Equal(t, Location{Region: "North America", Country: "United States"}, Lookup("VISA"))
		assert.Equal(t, Location{Region: "Europe", Country: "Belgium"}, Lookup("MAST"))
		assert.Equal(t, Location{Region: "Asia Pacific", Country: "Japan"}, Lookup("JCB"))
	})

	t.Run("unknown identifier falls back", func(t *testing.T) {
		assert.Equal(t, DefaultLocation, Lookup("XXXX"))
		assert.Equal(t, DefaultLocation, Lookup(""))
	})
}
