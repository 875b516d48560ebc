package picking

import "github.com/go-gl/mathgl/mgl64"

// Viewport is the on-screen rectangle the scene is drawn into, in pixels.
type Viewport struct {
	Width, Height    float64
	OffsetX, OffsetY float64
}

// Aspect returns width/height, or 1 for an empty viewport.
func (v Viewport) Aspect() float64 {
	if v.Height == 0 {
		return 1
	}
	return v.Width / v.Height
}

// NDC converts screen coordinates to normalized device coordinates in
// [-1, 1]. Screen Y grows downwards, NDC Y grows upwards.
func (v Viewport) NDC(screenX, screenY float64) (x, y float64) {
	x = (screenX-v.OffsetX)/v.Width*2 - 1
	y = 1 - (screenY-v.OffsetY)/v.Height*2
	return x, y
}

// Screen converts normalized device coordinates back to screen coordinates.
func (v Viewport) Screen(ndcX, ndcY float64) (x, y float64) {
	x = (ndcX+1)/2*v.Width + v.OffsetX
	y = (1-ndcY)/2*v.Height + v.OffsetY
	return x, y
}

// Camera is what picking needs from the scene camera.
type Camera interface {
	Position() mgl64.Vec3
	ViewProjection() mgl64.Mat4
}

// ScreenToRay converts screen coordinates to a world-space ray.
func ScreenToRay(screenX, screenY float64, vp Viewport, cam Camera) Ray {
	ndcX, ndcY := vp.NDC(screenX, screenY)
	inv := cam.ViewProjection().Inv()

	near := mgl64.TransformCoordinate(mgl64.Vec3{ndcX, ndcY, -1}, inv)
	far := mgl64.TransformCoordinate(mgl64.Vec3{ndcX, ndcY, 1}, inv)

	return NewRay(near, far.Sub(near))
}

// WorldToScreen projects a world-space point to screen coordinates.
// ok is false for points behind the camera.
func WorldToScreen(p mgl64.Vec3, vp Viewport, cam Camera) (x, y float64, ok bool) {
	clip := cam.ViewProjection().Mul4x1(p.Vec4(1))
	if clip[3] <= 0 {
		return 0, 0, false
	}
	x, y = vp.Screen(clip[0]/clip[3], clip[1]/clip[3])
	return x, y, true
}
