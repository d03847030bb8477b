// SPDX-License-Identifier: MIT

package route

// SelectStops returns, in input order, the stops serving any wanted
// category plus every start and end stop. An empty category list
// selects everything.
func SelectStops(stops []Stop, categories []string) []Stop {
	if len(categories) == 0 {
		return append([]Stop(nil), stops...)
	}
	want := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		want[c] = struct{}{}
	}

	out := make([]Stop, 0, len(stops))
	for _, s := range stops {
		if s.Start || s.End || serves(s, want) {
			out = append(out, s)
		}
	}

	return out
}

func serves(s Stop, want map[string]struct{}) bool {
	for _, c := range s.Categories {
		if _, ok := want[c]; ok {
			return true
		}
	}

	return false
}
