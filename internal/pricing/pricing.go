// Package pricing implements the add-on pricing rules for size and milk
// selections. Base prices come from the menu; this package only resolves the
// milk-alternative surcharge, which depends on both the selected size and the
// item's identity, so it must be re-derived whenever either changes.
package pricing

import "strings"

// Size-tiered surcharge for alternative milks, in currency-integer units.
const (
	AddOnSmall  = 8
	AddOnMedium = 12
	AddOnLarge  = 16
)

// freeMilks are the milk categories that never carry a surcharge: the dairy
// variants and the served-warm/cold variants.
var freeMilks = map[string]struct{}{
	"regular": {},
	"skinny":  {},
	"warm":    {},
	"cold":    {},
}

// icedFamily lists the name substrings that identify the iced-coffee family.
// Members are priced at the medium tier for every size.
var icedFamily = []string{
	"iced coffee",
	"iced americano",
	"flavored iced coffee",
	"iced mocha",
}

// AddOn returns the milk surcharge for the given item, size, and milk choice.
//
// Rules, in order:
//   - free milk categories cost 0 at any size;
//   - iced-coffee-family items pay the medium tier regardless of size;
//   - otherwise the tier follows the size text: small/single, medium/double,
//     large, with unrecognized text falling back to the small tier.
func AddOn(itemName, size, milk string) int {
	if _, ok := freeMilks[strings.ToLower(strings.TrimSpace(milk))]; ok {
		return 0
	}
	if IsIcedCoffee(itemName) {
		return AddOnMedium
	}
	return sizeTier(size)
}

// Quote returns the full unit price for a selection: the size's base price
// plus the milk surcharge.
func Quote(basePrice int, itemName, size, milk string) int {
	return basePrice + AddOn(itemName, size, milk)
}

// IsIcedCoffee reports whether the item name belongs to the iced-coffee
// family. Matching is case-insensitive substring containment.
func IsIcedCoffee(itemName string) bool {
	name := strings.ToLower(itemName)
	for _, s := range icedFamily {
		if strings.Contains(name, s) {
			return true
		}
	}
	return false
}

// sizeTier maps free-form size text to a surcharge tier.
func sizeTier(size string) int {
	s := strings.ToLower(size)
	switch {
	case strings.Contains(s, "small"), strings.Contains(s, "single"):
		return AddOnSmall
	case strings.Contains(s, "medium"), strings.Contains(s, "double"):
		return AddOnMedium
	case strings.Contains(s, "large"):
		return AddOnLarge
	default:
		return AddOnSmall
	}
}
