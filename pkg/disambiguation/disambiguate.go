package disambiguation

// Disambiguate trims the parents of each report to the fewest nearest
// parents that make its rendering unique among all reports. A report that
// cannot be told apart from another even with its full ancestry keeps all of
// its parents. The input is left untouched.
func Disambiguate(reports []Report, r *Renderer) []Report {
	maxDepth := 0
	for _, rep := range reports {
		if len(rep.Parents) > maxDepth {
			maxDepth = len(rep.Parents)
		}
	}

	out := make([]Report, len(reports))
	for i, rep := range reports {
		depth := len(rep.Parents)
		for d := 0; d <= maxDepth; d++ {
			if uniqueAt(reports, i, d, r) {
				depth = d
				break
			}
		}
		out[i] = truncate(rep, depth)
	}
	return out
}

func uniqueAt(reports []Report, i, depth int, r *Renderer) bool {
	own := r.Render(truncate(reports[i], depth))
	for j, other := range reports {
		if j != i && r.Render(truncate(other, depth)) == own {
			return false
		}
	}
	return true
}

func truncate(rep Report, depth int) Report {
	if depth > len(rep.Parents) {
		depth = len(rep.Parents)
	}
	parents := make([]Resource, depth)
	copy(parents, rep.Parents[:depth])
	return Report{Resource: rep.Resource, Parents: parents}
}
