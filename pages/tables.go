package pages

// Rotation keywords understood by the range language, in clockwise degrees.
// east/right and south/down are intentional synonyms.
var Rotations = map[string]int{
	"north": 0,
	"east":  90,
	"south": 180,
	"west":  270,
	"left":  -90,
	"right": 90,
	"down":  180,
}

// rotationOrder fixes the suffix scan order. No keyword is a suffix of
// another, so the first match is the only match.
var rotationOrder = []string{"north", "east", "south", "west", "left", "right", "down"}

// Qualifiers maps qualifier keywords to their page filters.
var Qualifiers = map[string]func(page int) bool{
	"even": func(page int) bool { return page%2 == 0 },
	"odd":  func(page int) bool { return page%2 == 1 },
}

var qualifierOrder = []string{"even", "odd"}
