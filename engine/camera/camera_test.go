package camera

import (
	"math"
	"testing"
)

func TestOrbitControllerStartPosition(t *testing.T) {
	c := NewOrbitController(
		WithOrbitRadius(7),
		WithOrbitHeight(3),
		WithOrbitSpeed(0.3),
	)

	x, y, z := c.Position()
	if x != 0 || y != 3 || z != 7 {
		t.Fatalf("position at start = (%v,%v,%v), want (0,3,7)", x, y, z)
	}
}

func TestOrbitControllerKeepsRadius(t *testing.T) {
	c := NewOrbitController(WithOrbitRadius(5), WithOrbitHeight(0), WithOrbitSpeed(1))

	for _, elapsed := range []float32{0, 0.5, 1.7, 4.2} {
		c.Advance(elapsed)
		x, _, z := c.Position()
		r := math.Sqrt(float64(x*x + z*z))
		if math.Abs(r-5) > 1e-4 {
			t.Fatalf("radius at %vs = %v, want 5", elapsed, r)
		}
	}
}

func TestOrbitControllerTargetOffset(t *testing.T) {
	c := NewOrbitController(WithOrbitRadius(2), WithOrbitHeight(1), WithOrbitTarget(10, 20, 30))

	x, y, z := c.Position()
	if x != 10 || y != 21 || z != 32 {
		t.Fatalf("offset position = (%v,%v,%v), want (10,21,32)", x, y, z)
	}
}

func TestUniformWritesLayout(t *testing.T) {
	cam := NewCamera(WithController(NewOrbitController()))
	cam.Advance(0)

	writes := cam.UniformWrites()
	if len(writes) != 2 {
		t.Fatalf("got %d writes, want 2", len(writes))
	}
	view, proj := writes[0], writes[1]
	if view.Binding != 0 || view.Offset != 0 {
		t.Errorf("view write binding/offset = %d/%d, want 0/0", view.Binding, view.Offset)
	}
	if proj.Binding != 0 || proj.Offset != 64 {
		t.Errorf("projection write binding/offset = %d/%d, want 0/64", proj.Binding, proj.Offset)
	}
	if len(view.Data) != 64 || len(proj.Data) != 64 {
		t.Errorf("write sizes = %d/%d bytes, want 64/64", len(view.Data), len(proj.Data))
	}
	if view.Provider != cam.BindGroupProvider() || proj.Provider != cam.BindGroupProvider() {
		t.Error("writes must target the camera's own bind group provider")
	}
}

func TestSetAspectChangesProjection(t *testing.T) {
	cam := NewCamera(WithController(NewOrbitController()), WithAspect(1))
	cam.Advance(0)
	before := cam.ProjectionMatrix()

	cam.SetAspect(2)
	after := cam.ProjectionMatrix()

	// Doubling the aspect halves the x scale and touches nothing else.
	if after[0] != before[0]/2 {
		t.Fatalf("x scale = %v, want %v", after[0], before[0]/2)
	}
	for i := 1; i < 16; i++ {
		if after[i] != before[i] {
			t.Fatalf("element %d changed from %v to %v; only element 0 may depend on aspect", i, before[i], after[i])
		}
	}
}
