package humidity

// Band of the scale considered healthy for a typical potted plant.
const (
	OptimalMin = 50
	OptimalMax = 70
)

// levels maps the lower bound of each band to its name, wettest first.
var levels = []struct {
	min  int
	name string
}{
	{OptimalMax + 1, "wet"},
	{OptimalMin, "optimal"},
	{30, "low"},
	{0, "dry"},
}

// Level returns the band name for a normalized percentage.
func Level(percent int) string {
	for _, l := range levels {
		if percent >= l.min {
			return l.name
		}
	}
	return "dry"
}

// Optimal reports whether percent lies inside [OptimalMin, OptimalMax].
func Optimal(percent int) bool {
	return percent >= OptimalMin && percent <= OptimalMax
}
