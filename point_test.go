package infinigrid

import "testing"

func TestPointArithmetic(t *testing.T) {
	a := Pt(3, 4)
	b := Pt(1, -2)

	if got := a.Add(b); got != Pt(4, 2) {
		t.Errorf("Add = %v, want (4, 2)", got)
	}
	if got := a.Sub(b); got != Pt(2, 6) {
		t.Errorf("Sub = %v, want (2, 6)", got)
	}
	if got := a.Mul(2); got != Pt(6, 8) {
		t.Errorf("Mul = %v, want (6, 8)", got)
	}
	if got := a.MulPointwise(b); got != Pt(3, -8) {
		t.Errorf("MulPointwise = %v, want (3, -8)", got)
	}
	if got := a.Length(); !almostEqual(got, 5) {
		t.Errorf("Length = %v, want 5", got)
	}
	if got := a.Distance(Pt(0, 0)); !almostEqual(got, 5) {
		t.Errorf("Distance = %v, want 5", got)
	}
}

func TestPointLerp(t *testing.T) {
	a := Pt(0, 0)
	b := Pt(10, -20)

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != Pt(5, -10) {
		t.Errorf("Lerp(0.5) = %v, want (5, -10)", got)
	}
}

func TestRect(t *testing.T) {
	r := RectXYWH(10, 20, 30, 40)

	if r.Width() != 30 || r.Height() != 40 {
		t.Fatalf("size = %vx%v, want 30x40", r.Width(), r.Height())
	}
	if got := r.Center(); got != Pt(25, 40) {
		t.Fatalf("Center = %v, want (25, 40)", got)
	}
	if !r.Contains(Pt(10, 20)) || !r.Contains(Pt(25, 40)) || !r.Contains(Pt(40, 60)) {
		t.Fatal("Contains rejected points on or inside the bounds")
	}
	if r.Contains(Pt(41, 60)) || r.Contains(Pt(25, 19)) {
		t.Fatal("Contains accepted points outside the bounds")
	}
}
