package geometry

import "github.com/tracelane/pathtracer/pkg/core"

// HittableList is a linear collection of Hittables that itself behaves as
// one Hittable: Hit returns the nearest intersection among its members,
// BoundingBox returns their merged box.
type HittableList struct {
	Members []core.Hittable
}

// NewHittableList builds a list from the given members.
func NewHittableList(members ...core.Hittable) *HittableList {
	return &HittableList{Members: members}
}

// Add appends a member to the list.
func (l *HittableList) Add(h core.Hittable) {
	l.Members = append(l.Members, h)
}

// Hit implements core.Hittable. The spec.md §9 Open Question on whether to
// tighten tMax as closer hits are found is decided in favor of tightening:
// it is strictly faster and the nearest-hit result is identical either way
// (spec.md §8 invariant 6).
func (l *HittableList) Hit(ray core.Ray, tMin, tMax float64) (core.HitRecord, bool) {
	var closest core.HitRecord
	hitAnything := false
	closestSoFar := tMax

	for _, member := range l.Members {
		if rec, ok := member.Hit(ray, tMin, closestSoFar); ok {
			hitAnything = true
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, hitAnything
}

// BoundingBox implements core.Hittable, returning false if the list is
// empty or any member lacks a bounding box.
func (l *HittableList) BoundingBox(tStart, tEnd float64) (core.AABB, bool) {
	if len(l.Members) == 0 {
		return core.AABB{}, false
	}

	box, ok := l.Members[0].BoundingBox(tStart, tEnd)
	if !ok {
		return core.AABB{}, false
	}

	for _, member := range l.Members[1:] {
		next, ok := member.BoundingBox(tStart, tEnd)
		if !ok {
			return core.AABB{}, false
		}
		box = core.Merge(box, next)
	}

	return box, true
}
