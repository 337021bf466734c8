package utils

// DefaultAverageRating is what an entity without ratings shows, so new
// listings do not start at zero stars.
const DefaultAverageRating = 5.0

func CalculateAverage(values []float64) float64 {
	if len(values) == 0 {
		return DefaultAverageRating
	}
	var total float64
	for _, v := range values {
		total += v
	}
	return total / float64(len(values))
}
