// Package palette maps catalog attributes to the CSS classes the dashboard
// uses for cards, badges and legends.
package palette

// Neutral is used when no palette entry applies.
const Neutral = "bg-gray-100 hover:bg-gray-200"

// tech is the card background palette indexed by technology category.
var tech = [...]string{
	"bg-purple-100 hover:bg-purple-200",
	"bg-blue-100 hover:bg-blue-200",
	"bg-green-100 hover:bg-green-200",
	"bg-yellow-100 hover:bg-yellow-200",
	"bg-red-100 hover:bg-red-200",
	"bg-indigo-100 hover:bg-indigo-200",
}

// mainCategory is the color scheme keyed by main category prefix.
var mainCategory = map[string]string{
	"IH":  "bg-red-200 hover:bg-red-300",
	"EX":  "bg-blue-200 hover:bg-blue-300",
	"DIG": "bg-green-200 hover:bg-green-300",
	"MIX": "bg-yellow-200 hover:bg-yellow-300",
	"AN":  "bg-pink-200 hover:bg-pink-300",
}

// TechSize returns the number of distinct technology colors.
func TechSize() int {
	return len(tech)
}

// Tech returns the card class for a technology category index.
// Indices past the end of the palette wrap around; negative indices get Neutral.
func Tech(index int) string {
	if index < 0 {
		return Neutral
	}
	return tech[index%len(tech)]
}

// MainCategory returns the class for a main category prefix ("IH", "EX", ...),
// or Neutral for unknown prefixes.
func MainCategory(main string) string {
	if c, ok := mainCategory[main]; ok {
		return c
	}
	return Neutral
}

// ComplexityBadge returns the badge class for a complexity rating.
func ComplexityBadge(complexity int) string {
	switch complexity {
	case 3:
		return "bg-red-300"
	case 2:
		return "bg-yellow-300"
	default:
		return "bg-green-300"
	}
}

// ComplexityPill returns the lighter pill class used in the detail popup.
func ComplexityPill(complexity int) string {
	switch complexity {
	case 3:
		return "bg-red-100 text-red-800"
	case 2:
		return "bg-yellow-100 text-yellow-800"
	default:
		return "bg-green-100 text-green-800"
	}
}
