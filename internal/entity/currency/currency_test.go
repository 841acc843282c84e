package currency

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_OnLookupKnownKey_ShouldReturnRiel(t *testing.T) {
	m, ok := Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, Riel, m)
	assert.True(t, strings.HasSuffix(m.ImageSrc(), "khr.webp"))
	assert.Equal(t, "Khmer Riel", m.AltText())
}

func Test_OnLookupSecondKey_ShouldReturnDollar(t *testing.T) {
	m, ok := Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, "b", m.Key())
	assert.True(t, strings.HasSuffix(m.ImageSrc(), "usd.webp"))
}

func Test_OnLookupUnknownKey_ShouldReturnNotFound(t *testing.T) {
	m, ok := Lookup("z")
	assert.False(t, ok)
	assert.Equal(t, Mode{}, m)

	_, ok = Lookup("")
	assert.False(t, ok)
}

func Test_Modes_ShouldHaveUniqueKeys(t *testing.T) {
	seen := make(map[string]bool)
	for _, k := range Keys() {
		assert.False(t, seen[k], "duplicate key %s", k)
		seen[k] = true
	}
	assert.Len(t, seen, 2)
}

func Test_OnModesModified_ShouldKeepSetClosed(t *testing.T) {
	modes := Modes()
	modes[0] = Dollar
	_ = append(modes, Mode{key: "c"})

	assert.Equal(t, []Mode{Riel, Dollar}, Modes())
	m, ok := Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, "Khmer Riel", m.AltText())
	_, ok = Lookup("c")
	assert.False(t, ok)
}
