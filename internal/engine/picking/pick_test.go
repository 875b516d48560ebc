package picking

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"

	"github.com/Faultbox/stickman/internal/engine/camera"
	"github.com/Faultbox/stickman/internal/engine/scene"
)

// ball is a single-sphere scene object.
type ball struct {
	id     uuid.UUID
	meshes []scene.Mesh
}

func newBall(center mgl64.Vec3, radius float64) *ball {
	return &ball{
		id:     uuid.New(),
		meshes: []scene.Mesh{{ID: uuid.New(), Shape: Sphere{Center: center, Radius: radius}}},
	}
}

func (b *ball) ID() uuid.UUID        { return b.id }
func (b *ball) Meshes() []scene.Mesh { return b.meshes }

func testCamera() *camera.Camera {
	return camera.New(mgl64.Vec3{0, 0, 10}, mgl64.Vec3{}, camera.DefaultLens(), 800.0/600.0)
}

var testViewport = Viewport{Width: 800, Height: 600}

func TestViewportNDC(t *testing.T) {
	vp := Viewport{Width: 800, Height: 600, OffsetX: 100, OffsetY: 50}

	tests := []struct {
		sx, sy float64
		nx, ny float64
	}{
		{100, 50, -1, 1},
		{900, 650, 1, -1},
		{500, 350, 0, 0},
	}
	for _, tt := range tests {
		nx, ny := vp.NDC(tt.sx, tt.sy)
		if nx != tt.nx || ny != tt.ny {
			t.Errorf("NDC(%v, %v) = (%v, %v), want (%v, %v)", tt.sx, tt.sy, nx, ny, tt.nx, tt.ny)
		}
		sx, sy := vp.Screen(nx, ny)
		if sx != tt.sx || sy != tt.sy {
			t.Errorf("Screen(NDC(%v, %v)) = (%v, %v)", tt.sx, tt.sy, sx, sy)
		}
	}
}

func TestScreenToRayThroughCenter(t *testing.T) {
	r := ScreenToRay(400, 300, testViewport, testCamera())
	if want := (mgl64.Vec3{0, 0, -1}); !r.Direction.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("direction = %v, want %v", r.Direction, want)
	}
	if r.Origin.Z() >= 10 || r.Origin.Z() < 9.8 {
		t.Errorf("origin %v should lie on the near plane", r.Origin)
	}
}

func TestWorldToScreenRoundTrip(t *testing.T) {
	cam := testCamera()
	points := []mgl64.Vec3{{0, 0, 0}, {1, 2, 0}, {-3, 1, -4}, {2, -2, 5}}

	for _, p := range points {
		sx, sy, ok := WorldToScreen(p, testViewport, cam)
		if !ok {
			t.Fatalf("WorldToScreen(%v) not visible", p)
		}
		r := ScreenToRay(sx, sy, testViewport, cam)

		// Distance from p to the ray's line.
		v := p.Sub(r.Origin)
		d := v.Sub(r.Direction.Mul(v.Dot(r.Direction))).Len()
		if d > 1e-6 {
			t.Errorf("ray through projection of %v misses it by %v", p, d)
		}
	}
}

func TestWorldToScreenBehindCamera(t *testing.T) {
	if _, _, ok := WorldToScreen(mgl64.Vec3{0, 0, 20}, testViewport, testCamera()); ok {
		t.Error("point behind the camera should not project")
	}
}

func TestPickNearest(t *testing.T) {
	reg := scene.NewRegistry()
	far := newBall(mgl64.Vec3{0, 0, -5}, 1)
	near := newBall(mgl64.Vec3{0, 0, 2}, 1)
	for _, b := range []*ball{far, near} {
		if err := reg.Add(b); err != nil {
			t.Fatal(err)
		}
	}

	entry, hit, ok := Pick(400, 300, testViewport, testCamera(), reg)
	if !ok {
		t.Fatal("expected a hit")
	}
	if entry.ID != near.id || hit.Object != near.id {
		t.Errorf("picked %v, want the near ball %v", entry.ID, near.id)
	}
	if hit.Mesh != near.meshes[0].ID {
		t.Errorf("mesh = %v, want %v", hit.Mesh, near.meshes[0].ID)
	}
	if want := (mgl64.Vec3{0, 0, 3}); !hit.Point.ApproxEqualThreshold(want, 1e-9) {
		t.Errorf("point = %v, want %v", hit.Point, want)
	}
	if math.Abs(hit.Distance-hit.Point.Sub(hit.Ray.Origin).Len()) > 1e-9 {
		t.Errorf("distance %v does not match point", hit.Distance)
	}
}

func TestPickTiesGoToFirstRegistered(t *testing.T) {
	reg := scene.NewRegistry()
	a := newBall(mgl64.Vec3{}, 1)
	b := newBall(mgl64.Vec3{}, 1)
	_ = reg.Add(a)
	_ = reg.Add(b)

	for i := 0; i < 10; i++ {
		entry, _, ok := Pick(400, 300, testViewport, testCamera(), reg)
		if !ok || entry.ID != a.id {
			t.Fatalf("pick %d = %v, want %v", i, entry.ID, a.id)
		}
	}
}

func TestPickMiss(t *testing.T) {
	reg := scene.NewRegistry()
	_ = reg.Add(newBall(mgl64.Vec3{50, 0, 0}, 1))

	if _, _, ok := Pick(400, 300, testViewport, testCamera(), reg); ok {
		t.Error("expected a miss")
	}
}

func TestPickSkipsUnresolvedMeshes(t *testing.T) {
	reg := scene.NewRegistry()
	b := newBall(mgl64.Vec3{0, 0, -5}, 1)
	_ = reg.Add(b)

	// A mesh added after registration has no owner in the index.
	b.meshes = append(b.meshes, scene.Mesh{ID: uuid.New(), Shape: Sphere{Center: mgl64.Vec3{0, 0, 3}, Radius: 1}})

	entry, hit, ok := Pick(400, 300, testViewport, testCamera(), reg)
	if !ok {
		t.Fatal("expected the registered mesh to be hit")
	}
	if entry.ID != b.id || hit.Mesh != b.meshes[0].ID {
		t.Errorf("hit mesh %v, want %v", hit.Mesh, b.meshes[0].ID)
	}
}
