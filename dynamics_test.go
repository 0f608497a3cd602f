package auv

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestPrimitives(t *testing.T) {
	if a, err := Acceleration(10, 4); err != nil || a != 2.5 {
		t.Fatalf("a=%f err=%v", a, err)
	}
	if a, err := Acceleration(-10, 4); err != nil || a != -2.5 {
		t.Fatalf("a=%f err=%v", a, err)
	}
	if α, err := AngularAcceleration(3, 1.5); err != nil || α != 2 {
		t.Fatalf("α=%f err=%v", α, err)
	}
	if I, err := MomentOfInertia(2, 3); err != nil || I != 18 {
		t.Fatalf("I=%f err=%v", I, err)
	}
	if I, err := MomentOfInertia(2, 0); err != nil || I != 0 {
		t.Fatalf("a point mass on the axis has no inertia, got I=%f err=%v", I, err)
	}
	for _, mass := range []float64{0, -3, math.NaN()} {
		_, err := Acceleration(1, mass)
		assertInvalid(t, err, fmt.Sprintf("Acceleration(mass=%f)", mass))
		_, err = MomentOfInertia(mass, 1)
		assertInvalid(t, err, fmt.Sprintf("MomentOfInertia(mass=%f)", mass))
	}
	_, err := AngularAcceleration(1, 0)
	assertInvalid(t, err, "AngularAcceleration(inertia=0)")
	_, err = MomentOfInertia(1, -0.1)
	assertInvalid(t, err, "MomentOfInertia(r<0)")
}

func TestTorque(t *testing.T) {
	for _, tt := range []struct {
		force, dir, r, exp float64
	}{
		{10, 90, 2, 20},
		{10, 30, 2, 10},
		{10, 0, 2, 0},
		{10, 180, 2, 0},
		{10, 270, 2, -20},
		{10, -90, 2, -20},
		{5, 45, 0, 0},
	} {
		t.Run(fmt.Sprintf("F=%g@%gdeg", tt.force, tt.dir), func(t *testing.T) {
			τ, err := Torque(tt.force, tt.dir, tt.r)
			if err != nil {
				t.Fatal(err)
			}
			if !scalar.EqualWithinAbs(τ, tt.exp, 1e-9) {
				t.Fatalf("τ=%f != %f", τ, tt.exp)
			}
		})
	}
	_, err := Torque(1, 90, -1)
	assertInvalid(t, err, "Torque(r<0)")
	_, err = Torque(1, math.Inf(1), 1)
	assertInvalid(t, err, "Torque(direction=inf)")
}
