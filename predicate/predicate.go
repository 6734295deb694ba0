package predicate

import "math/big"

// Predicate is one caller-asserted or caller-queried fact: a name, the
// points it relates, and any numeric constants it carries (e.g. the degree
// value of an s_angle, or the ratio of an rconst).
type Predicate struct {
	Name      string
	Points    []string
	Constants []*big.Rat
}

// ReplacePoints returns a copy of p with every point name present in
// mapping substituted by its mapped value, leaving unmapped names
// untouched. Used to restate a predicate after point merging without
// mutating the original.
func (p Predicate) ReplacePoints(mapping map[string]string) Predicate {
	out := Predicate{Name: p.Name, Constants: p.Constants}
	out.Points = make([]string, len(p.Points))
	for i, pt := range p.Points {
		if r, ok := mapping[pt]; ok {
			out.Points[i] = r
		} else {
			out.Points[i] = pt
		}
	}
	return out
}
