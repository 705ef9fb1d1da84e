package common

import (
	"math"
	"testing"
)

func matNear(t *testing.T, got, want []float32, label string) {
	t.Helper()
	for i := range want {
		if math.Abs(float64(got[i]-want[i])) > 1e-5 {
			t.Fatalf("%s: element %d = %v, want %v", label, i, got[i], want[i])
		}
	}
}

func identityMat() []float32 {
	m := make([]float32, 16)
	Identity(m)
	return m
}

func TestRotationZeroAnglesIsIdentity(t *testing.T) {
	m := make([]float32, 16)
	Rotation(m, 0, 0, 0)
	matNear(t, m, identityMat(), "Rotation(0,0,0)")
}

func TestMul4Identity(t *testing.T) {
	a := make([]float32, 16)
	Rotation(a, 0.3, 1.1, -0.7)

	out := make([]float32, 16)
	Mul4(out, identityMat(), a)
	matNear(t, out, a, "I*a")

	Mul4(out, a, identityMat())
	matNear(t, out, a, "a*I")
}

func TestMul4Associative(t *testing.T) {
	a, b, c := make([]float32, 16), make([]float32, 16), make([]float32, 16)
	RotationX(a, 0.4)
	RotationY(b, 1.2)
	Translation(c, 1, 2, 3)

	ab, abc1 := make([]float32, 16), make([]float32, 16)
	Mul4(ab, a, b)
	Mul4(abc1, ab, c)

	bc, abc2 := make([]float32, 16), make([]float32, 16)
	Mul4(bc, b, c)
	Mul4(abc2, a, bc)

	matNear(t, abc1, abc2, "(ab)c vs a(bc)")
}

func TestTranslationMovesPoint(t *testing.T) {
	m := make([]float32, 16)
	Translation(m, 1, -2, 3)

	x, y, z := TransformPoint(m, 10, 20, 30)
	if x != 11 || y != 18 || z != 33 {
		t.Fatalf("translated point = (%v,%v,%v), want (11,18,33)", x, y, z)
	}
}

func TestRotationYQuarterTurn(t *testing.T) {
	m := make([]float32, 16)
	RotationY(m, float32(math.Pi/2))

	// +z rotates to +x under a quarter turn around y.
	x, y, z := TransformPoint(m, 0, 0, 1)
	if math.Abs(float64(x-1)) > 1e-6 || math.Abs(float64(y)) > 1e-6 || math.Abs(float64(z)) > 1e-6 {
		t.Fatalf("rotated point = (%v,%v,%v), want (1,0,0)", x, y, z)
	}
}

func TestComposePlacesScalesAndRotates(t *testing.T) {
	rot := make([]float32, 16)
	Identity(rot)

	m := make([]float32, 16)
	Compose(m, 5, -1, 2, rot, 2, 3, 4)

	x, y, z := TransformPoint(m, 1, 1, 1)
	if x != 7 || y != 2 || z != 6 {
		t.Fatalf("composed point = (%v,%v,%v), want (7,2,6)", x, y, z)
	}
}

func TestPerspectiveDepthMapping(t *testing.T) {
	m := make([]float32, 16)
	Perspective(m, float32(math.Pi/4), 16.0/9.0, 0.1, 100)

	// A perspective projection must not be affine: w depends on z.
	if m[11] != -1 {
		t.Fatalf("m[11] = %v, want -1", m[11])
	}
	// Wider aspect compresses x.
	narrow := make([]float32, 16)
	Perspective(narrow, float32(math.Pi/4), 1.0, 0.1, 100)
	if m[0] >= narrow[0] {
		t.Fatalf("x scale with aspect 16:9 (%v) should be below square aspect (%v)", m[0], narrow[0])
	}
}

func TestLookAtFromZAxis(t *testing.T) {
	m := make([]float32, 16)
	LookAt(m, 0, 0, 5, 0, 0, 0, 0, 1, 0)

	// The eye maps to the view-space origin.
	x, y, z := TransformPoint(m, 0, 0, 5)
	if math.Abs(float64(x)) > 1e-5 || math.Abs(float64(y)) > 1e-5 || math.Abs(float64(z)) > 1e-5 {
		t.Fatalf("eye in view space = (%v,%v,%v), want origin", x, y, z)
	}
	// The target sits on the negative z axis in view space.
	_, _, tz := TransformPoint(m, 0, 0, 0)
	if math.Abs(float64(tz+5)) > 1e-5 {
		t.Fatalf("target view-space z = %v, want -5", tz)
	}
}

func TestNormalize(t *testing.T) {
	v := []float32{3, 0, 4}
	Normalize(v)
	if math.Abs(float64(v[0]-0.6)) > 1e-6 || v[1] != 0 || math.Abs(float64(v[2]-0.8)) > 1e-6 {
		t.Fatalf("normalized = %v, want [0.6 0 0.8]", v)
	}

	zero := []float32{0, 0, 0}
	Normalize(zero)
	if zero[0] != 0 || zero[1] != 0 || zero[2] != 0 {
		t.Fatalf("zero vector changed: %v", zero)
	}
}

func TestCrossRightHanded(t *testing.T) {
	out := make([]float32, 3)
	Cross(out, []float32{1, 0, 0}, []float32{0, 1, 0})
	if out[0] != 0 || out[1] != 0 || out[2] != 1 {
		t.Fatalf("x cross y = %v, want z", out)
	}
}

func TestSliceToBytes(t *testing.T) {
	if got := SliceToBytes([]float32(nil)); got != nil {
		t.Fatalf("nil slice produced %d bytes", len(got))
	}
	data := []float32{1, 2, 3}
	if got := SliceToBytes(data); len(got) != 12 {
		t.Fatalf("3 float32s produced %d bytes, want 12", len(got))
	}
	idx := []uint32{0, 1, 2, 0, 2, 3}
	if got := SliceToBytes(idx); len(got) != 24 {
		t.Fatalf("6 uint32s produced %d bytes, want 24", len(got))
	}
}
