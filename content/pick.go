package content

// Roller supplies a uniform value in [0, 1)
type Roller interface {
	Float64() float64
}

// Pick selects one line using a single roll
// Returns "" for an empty list
func Pick(r Roller, lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	i := int(r.Float64() * float64(len(lines)))
	if i >= len(lines) {
		i = len(lines) - 1
	}
	return lines[i]
}
