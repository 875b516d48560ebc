package picking

import (
	"sort"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/Faultbox/stickman/internal/engine/scene"
)

// Intersection is a ray hit on a registered mesh.
type Intersection struct {
	Point    mgl64.Vec3
	Distance float64
	Object   uuid.UUID // Owning object
	Mesh     uuid.UUID // Sub-mesh that was hit
	Ray      Ray
}

type meshHit struct {
	mesh uuid.UUID
	t    float64
}

// Pick casts a ray from the camera through a screen position and returns
// the nearest registered object it hits. A miss is not an error.
func Pick(screenX, screenY float64, vp Viewport, cam Camera, reg *scene.Registry) (scene.Entry, Intersection, bool) {
	return PickRay(ScreenToRay(screenX, screenY, vp, cam), reg)
}

// PickRay resolves a ray against the registry. Hits are tried nearest first;
// a hit whose mesh no longer resolves to an owner is skipped.
func PickRay(ray Ray, reg *scene.Registry) (scene.Entry, Intersection, bool) {
	var hits []meshHit
	reg.Each(func(e scene.Entry) bool {
		for _, m := range e.Object.Meshes() {
			if m.Shape == nil {
				continue
			}
			if t, ok := m.Shape.IntersectRay(ray.Origin, ray.Direction); ok {
				hits = append(hits, meshHit{mesh: m.ID, t: t})
			}
		}
		return true
	})

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].t < hits[j].t
	})

	for _, h := range hits {
		owner, ok := reg.Owner(h.mesh)
		if !ok {
			continue
		}
		return owner, Intersection{
			Point:    ray.At(h.t),
			Distance: h.t,
			Object:   owner.ID,
			Mesh:     h.mesh,
			Ray:      ray,
		}, true
	}
	return scene.Entry{}, Intersection{}, false
}
