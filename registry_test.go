package swift

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistry(t *testing.T) {
	reg := DefaultRegistry()

	pt, ok := reg.Lookup("20")
	require.True(t, ok)
	assert.Equal(t, "16x", pt.Validator)

	_, ok = reg.Lookup("999")
	assert.False(t, ok)

	// Each call hands out an independent copy.
	other := DefaultRegistry()
	other.Register("20", PatternTriple{Parser: "N"})
	pt, _ = reg.Lookup("20")
	assert.Equal(t, "S", pt.Parser)
}

func TestRegistry_RegisterOverrides(t *testing.T) {
	reg := DefaultRegistry()
	reg.Register("20", PatternTriple{Parser: "SN", Components: "SN", Validator: "8c8n"})

	pt, ok := reg.Lookup("20")
	require.True(t, ok)
	assert.Equal(t, "SN", pt.Parser)
}

func TestRegistry_LoadJSON(t *testing.T) {
	reg := NewRegistry()
	src := strings.NewReader(`{
		"20":  {"parser": "S", "components": "S", "validator": "16x"},
		"32A": {"parser": "NSN", "components": "NcN", "validator": "6!n3!a15d"}
	}`)

	require.NoError(t, reg.LoadJSON(src))
	assert.Equal(t, 2, reg.Size())

	pt, ok := reg.Lookup("32A")
	require.True(t, ok)
	assert.Equal(t, "NSN", pt.Parser)
}

func TestRegistry_LoadJSON_CapitalizedKeys(t *testing.T) {
	reg := NewRegistry()
	src := strings.NewReader(`{"20": {"Parser": "S", "Components": "S", "Validator": "16x"}}`)

	require.NoError(t, reg.LoadJSON(src))

	pt, ok := reg.Lookup("20")
	require.True(t, ok)
	assert.Equal(t, "S", pt.Parser)
	assert.Equal(t, "16x", pt.Validator)
}

func TestRegistry_LoadJSON_RejectsBadEntries(t *testing.T) {
	reg := NewRegistry()

	err := reg.LoadJSON(strings.NewReader(`{"20": {"components": "S"}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)

	err = reg.LoadJSON(strings.NewReader(`{"TOOLONGNAME": {"parser": "S"}}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPattern)

	err = reg.LoadJSON(strings.NewReader(`not json`))
	require.Error(t, err)

	// A rejected document must not partially apply.
	assert.Equal(t, 0, reg.Size())
}

func TestRegistry_Names(t *testing.T) {
	reg := NewRegistry()
	reg.Register("70", PatternTriple{Parser: "S"})
	reg.Register("20", PatternTriple{Parser: "S"})
	reg.Register("108", PatternTriple{Parser: "S"})

	assert.Equal(t, []string{"108", "20", "70"}, reg.Names())
}

func TestRegistry_Clone(t *testing.T) {
	reg := DefaultRegistry()
	clone := reg.Clone()
	clone.Register("NEW", PatternTriple{Parser: "S"})

	_, ok := reg.Lookup("NEW")
	assert.False(t, ok)
	_, ok = clone.Lookup("20")
	assert.True(t, ok)
}
