package prim

import (
	"math"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestMatrixTransformPoint(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -2), Pt(1, 1), Pt(11, -1)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"scale then translate", Translate(5, 5).Multiply(Scale(2, 2)), Pt(1, 1), Pt(7, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.TransformPoint(tt.in); !got.Approx(tt.want, 1e-12) {
				t.Errorf("TransformPoint(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestMatrixIsIdentity(t *testing.T) {
	if !Identity().IsIdentity() {
		t.Error("Identity().IsIdentity() = false")
	}
	if Translate(1, 0).IsIdentity() {
		t.Error("Translate(1,0).IsIdentity() = true")
	}
}

func TestMatrixMat4AgreesWithTransformPoint(t *testing.T) {
	m := Translate(3, 4).Multiply(Rotate(0.3)).Multiply(Scale(2, 0.5))
	p := Pt(1.5, -2)
	want := m.TransformPoint(p)
	got := Apply(m.Mat4(), f32.Vec3{float32(p.X), float32(p.Y), 0})
	if math.Abs(float64(got[0])-want.X) > 1e-5 || math.Abs(float64(got[1])-want.Y) > 1e-5 || got[3] != 1 {
		t.Errorf("Mat4 maps %v to %v, want %v", p, got, want)
	}
}

func TestOrtho2D(t *testing.T) {
	tr := Ortho2D(800, 600)
	m := tr.Combined()
	tests := []struct {
		in   f32.Vec3
		want f32.Vec4
	}{
		{f32.Vec3{0, 0, 0}, f32.Vec4{-1, -1, 0, 1}},
		{f32.Vec3{800, 600, 0}, f32.Vec4{1, 1, 0, 1}},
		{f32.Vec3{400, 300, 0}, f32.Vec4{0, 0, 0, 1}},
	}
	for _, tt := range tests {
		got := Apply(m, tt.in)
		for i := range got {
			if math.Abs(float64(got[i]-tt.want[i])) > 1e-6 {
				t.Errorf("Apply(%v) = %v, want %v", tt.in, got, tt.want)
				break
			}
		}
	}
}

func TestMul4AndTranspose(t *testing.T) {
	a := Translate(2, 3).Mat4()
	if Mul4(a, Identity4()) != a || Mul4(Identity4(), a) != a {
		t.Error("identity is not neutral for Mul4")
	}
	tr := Transpose(a)
	if tr[12] != 2 || tr[13] != 3 || Transpose(tr) != a {
		t.Errorf("Transpose = %v", tr)
	}
}
