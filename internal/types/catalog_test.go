// Package types provides type definitions for structured data used throughout the troop-optimizer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return &Catalog{
		Tribe: "spartans",
		Units: []Unit{
			{Name: "Hoplite", Cost: NewResources(110, 185, 110, 35)},
			{Name: "Elpida Rider", Cost: NewResources(555, 445, 330, 110)},
			{Name: "Twinsteel Therion", Cost: NewResources(130, 200, 400, 65)},
		},
	}
}

func TestCatalog_Lookup(t *testing.T) {
	cat := testCatalog()

	for _, name := range []string{"Elpida Rider", "elpida_rider", "ElpidaRider", " ELPIDA-RIDER "} {
		u, err := cat.Lookup(name)
		require.NoError(t, err, name)
		assert.Equal(t, "Elpida Rider", u.Name)
		assert.Equal(t, NewResources(555, 445, 330, 110), u.Cost)
	}

	_, err := cat.Lookup("Legionnaire")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownUnit)
	assert.Contains(t, err.Error(), "spartans")
}

func TestCatalog_Names(t *testing.T) {
	assert.Equal(t, []string{"Hoplite", "Elpida Rider", "Twinsteel Therion"}, testCatalog().Names())
}

func TestCatalog_Validate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, testCatalog().Validate())
	})

	t.Run("missing tribe", func(t *testing.T) {
		cat := testCatalog()
		cat.Tribe = ""
		err := cat.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Tribe")
	})

	t.Run("no units", func(t *testing.T) {
		cat := &Catalog{Tribe: "empty"}
		assert.Error(t, cat.Validate())
	})

	t.Run("unnamed unit", func(t *testing.T) {
		cat := testCatalog()
		cat.Units = append(cat.Units, Unit{Cost: NewResources(1, 1, 1, 1)})
		err := cat.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Name")
	})

	t.Run("duplicate", func(t *testing.T) {
		cat := testCatalog()
		cat.Units = append(cat.Units, Unit{Name: "hoplite", Cost: NewResources(1, 1, 1, 1)})
		err := cat.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicates")
	})

	t.Run("negative cost", func(t *testing.T) {
		cat := testCatalog()
		cat.Units[0].Cost.Crop = -1
		err := cat.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "negative cost")
	})
}
