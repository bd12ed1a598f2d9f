package generative

import (
	"errors"
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func pointsAlmostEqual(p, q Point) bool {
	return almostEqual(p.X, q.X) && almostEqual(p.Y, q.Y)
}

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"translate after scale", Translate(10, 20).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 22)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if !pointsAlmostEqual(got, tt.want) {
				t.Errorf("Matrix%+v.TransformPoint(%v) = %v, want %v", tt.m, tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixInvert(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
	}{
		{"identity", Identity()},
		{"translate", Translate(10, 20)},
		{"scale", Scale(2, 0.5)},
		{"rotate", Rotate(math.Pi / 3)},
		{"composite", Translate(5, -7).Multiply(Rotate(0.4)).Multiply(Scale(3, 2))},
		{"tiny scale", Scale(1e-6, 1e-6)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, err := tt.m.Invert()
			if err != nil {
				t.Fatalf("Invert() error = %v", err)
			}
			p := Pt(13, -2)
			if got := inv.TransformPoint(tt.m.TransformPoint(p)); !pointsAlmostEqual(got, p) {
				t.Errorf("round trip = %v, want %v", got, p)
			}
		})
	}
}

func TestMatrixInvertSingular(t *testing.T) {
	for _, m := range []Matrix{{}, Scale(0, 1), Scale(1, 0), {A: 1, B: 2, D: 2, E: 4}, Scale(math.NaN(), 1), Scale(math.Inf(1), 1), Scale(1e-200, 1e-200)} {
		if _, err := m.Invert(); !errors.Is(err, ErrSingularMatrix) {
			t.Errorf("Matrix%+v.Invert() error = %v, want ErrSingularMatrix", m, err)
		}
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1, 0).IsIdentity() = true")
	}
}

func TestMatrixAff3(t *testing.T) {
	m := Matrix{A: 1, B: 2, C: 3, D: 4, E: 5, F: 6}
	want := f64.Aff3{1, 2, 3, 4, 5, 6}
	if got := m.Aff3(); got != want {
		t.Errorf("Aff3() = %v, want %v", got, want)
	}
	if got := MatrixFromAff3(want); got != m {
		t.Errorf("MatrixFromAff3() = %+v, want %+v", got, m)
	}
}

func TestScreenToLocal(t *testing.T) {
	tests := []struct {
		name   string
		ctm    Matrix
		client Point
		want   Point
	}{
		{"identity", Identity(), Pt(12.5, 7), Pt(12.5, 7)},
		{"offset element", Translate(100, 50), Pt(110, 60), Pt(10, 10)},
		{"scaled element", Scale(2, 4), Pt(10, 10), Pt(5, 2.5)},
		{"offset and scaled", Translate(100, 50).Multiply(Scale(2, 2)), Pt(120, 70), Pt(10, 10)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ScreenToLocal(tt.ctm, tt.client)
			if err != nil {
				t.Fatalf("ScreenToLocal() error = %v", err)
			}
			if !pointsAlmostEqual(got, tt.want) {
				t.Errorf("ScreenToLocal(%v) = %v, want %v", tt.client, got, tt.want)
			}
		})
	}
}

func TestScreenToLocalSingular(t *testing.T) {
	if _, err := ScreenToLocal(Scale(0, 0), Pt(1, 1)); !errors.Is(err, ErrSingularMatrix) {
		t.Errorf("ScreenToLocal() error = %v, want ErrSingularMatrix", err)
	}
}
