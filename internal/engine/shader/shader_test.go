package shader

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestMat4f(t *testing.T) {
	m := mgl64.Translate3D(1, 2, 3)
	f := Mat4f(m)

	// Column-major: translation sits in the last column.
	if f[12] != 1 || f[13] != 2 || f[14] != 3 || f[15] != 1 {
		t.Errorf("translation column = %v", f[12:])
	}
	for i := range m {
		if float64(f[i]) != m[i] {
			t.Errorf("element %d = %v, want %v", i, f[i], m[i])
		}
	}
}
