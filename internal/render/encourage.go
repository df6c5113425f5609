package render

import "math/rand/v2"

// Encouragements prefix the win message.
var Encouragements = []string{
	"Great job!",
	"Nice!",
	"Hell yeah!",
	"Solid,",
	"Damn right!",
	"Clean,",
}

// PickEncouragement returns a random entry from Encouragements.
func PickEncouragement(rng *rand.Rand) string {
	return Encouragements[rng.IntN(len(Encouragements))]
}
