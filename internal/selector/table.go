package selector

// HeaderIndices resolves an ordered column list to positions in the
// header using a forward scan: the header is walked left to right and
// an index is recorded whenever the current header cell equals the
// next unresolved entry of columns. Invariant: entries of columns
// whose names do not appear in the header at or after the previous
// match are dropped from the result. Callers that need every entry
// resolved must pass columns in header order (the complement path
// derives its list from the header itself, so it always does).
func HeaderIndices(header, columns []string) []int {
	indices := make([]int, 0, len(columns))
	for i, name := range header {
		if len(indices) >= len(columns) {
			break
		}
		if name == columns[len(indices)] {
			indices = append(indices, i)
		}
	}
	return indices
}

// SetDiff returns univ minus subs, preserving the order of univ.
func SetDiff(univ, subs []string) []string {
	drop := make(map[string]struct{}, len(subs))
	for _, s := range subs {
		drop[s] = struct{}{}
	}
	diff := make([]string, 0, len(univ))
	for _, c := range univ {
		if _, ok := drop[c]; !ok {
			diff = append(diff, c)
		}
	}
	return diff
}

// MissingColumns returns the requested names that do not occur in the
// header, preserving request order. An empty result means the request
// is valid.
func MissingColumns(requested, header []string) []string {
	return SetDiff(requested, header)
}

// projectRow returns the cells of row at the given indices, in index
// order. Indices past the end of a short row yield empty cells.
func projectRow(row []string, indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		if idx < len(row) {
			out[i] = row[idx]
		}
	}
	return out
}
