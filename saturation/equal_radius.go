// File: equal_radius.go
// Role: the equal-radius-circles pass (spec.md §4.5 step 3). For each
// candidate center a, points are grouped by numeric distance from a;
// groups of three or more force pairwise equal log-distance from a — the
// symbolic payload of "these points lie on a circle centered at a".
//
// geodb's FormalCircle has no dedicated center field (it is defined by
// three points on its circumference, per force_concyclic), so this pass
// surfaces the equal-radius fact directly as pairwise ForceCong rather than
// constructing a centered-circle record.
package saturation

import "github.com/augend/ddar/numerics"

func (e *Engine) equalRadiusPass() (bool, error) {
	db := e.db
	points := db.PointNames()
	n := len(points)
	if n < 4 {
		return false, nil
	}

	changed := false
	for i := 0; i < n; i++ {
		center := points[i]
		pc, err := db.Point(center)
		if err != nil {
			continue
		}

		buckets := map[string][]string{}
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			p := points[j]
			pp, err := db.Point(p)
			if err != nil {
				continue
			}
			d := numerics.Distance(pc, pp)
			key := bucketKey(d)
			buckets[key] = append(buckets[key], p)
		}

		for _, group := range buckets {
			if len(group) < 3 {
				continue
			}
			cause := e.arena.New("equal_radius_circles", "points equidistant from "+center)
			anchor := db.PairLogDist(center, group[0])
			for _, p := range group[1:] {
				ok, err := db.Mul().ForceCong(anchor, db.PairLogDist(center, p), cause)
				if err != nil {
					return changed, err
				}
				changed = changed || ok
			}
		}
	}
	return changed, nil
}

// bucketKey truncates a distance onto a grid of step ATOM: distances in the
// same grid cell share a bucket, while two distances within ATOM of each
// other that straddle a cell boundary land in different buckets.
func bucketKey(d float64) string {
	scaled := int64(d / numerics.ATOM)
	return itoa(int(scaled))
}
