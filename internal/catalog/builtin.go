// Package catalog provides unit catalogs: built-in tribes and catalog files on disk.
package catalog

import (
	"sort"
	"strings"

	"github.com/jonathan/troop-optimizer/internal/types"
)

// DefaultTribe is the built-in catalog used when none is named.
const DefaultTribe = "spartans"

var builtins = map[string]func() *types.Catalog{
	"spartans": Spartans,
}

// Spartans returns the Spartan unit catalog.
func Spartans() *types.Catalog {
	return &types.Catalog{
		Tribe: "spartans",
		Units: []types.Unit{
			{Name: "Hoplite", Cost: types.NewResources(110, 185, 110, 35)},
			{Name: "Sentinel", Cost: types.NewResources(185, 150, 35, 75)},
			{Name: "Shieldsman", Cost: types.NewResources(145, 95, 245, 45)},
			{Name: "Twinsteel Therion", Cost: types.NewResources(130, 200, 400, 65)},
			{Name: "Elpida Rider", Cost: types.NewResources(555, 445, 330, 110)},
			{Name: "Corinthian Crusher", Cost: types.NewResources(660, 495, 995, 165)},
			{Name: "Ram", Cost: types.NewResources(525, 260, 790, 130)},
			{Name: "Ballista", Cost: types.NewResources(550, 1240, 825, 135)},
			{Name: "Ephor", Cost: types.NewResources(33450, 30665, 36240, 13935)},
			{Name: "Settler", Cost: types.NewResources(5115, 5580, 6045, 3255)},
		},
	}
}

// Builtin returns a fresh copy of the named built-in catalog (case-insensitive).
func Builtin(name string) (*types.Catalog, bool) {
	build, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	return build(), true
}

// BuiltinNames lists the built-in catalog names in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
