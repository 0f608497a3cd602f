package auv

import (
	"fmt"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestBuoyancy(t *testing.T) {
	env := DefaultEnvironment()
	for _, tt := range []struct{ ρ, V, exp float64 }{{1, 10, 98.1}, {5, 20, 981}, {2, 5, 98.1}} {
		if b, err := env.Buoyancy(tt.ρ, tt.V); err != nil || !scalar.EqualWithinAbs(b, tt.exp, 1e-9) {
			t.Fatalf("Buoyancy(%f, %f) = %f (err=%v) != %f", tt.ρ, tt.V, b, err, tt.exp)
		}
	}
	for _, args := range [][2]float64{{0, 1}, {1, 0}, {-1, 1}, {1, math.NaN()}} {
		_, err := env.Buoyancy(args[0], args[1])
		assertInvalid(t, err, fmt.Sprintf("Buoyancy%v", args))
	}
	// Gravity is injected, not global.
	moon := Environment{G: 1.62, WaterDensity: 1000, AtmosphericPressure: 1}
	if b, _ := moon.Buoyancy(1000, 1); !scalar.EqualWithinAbs(b, 1620, 1e-9) {
		t.Fatalf("lunar buoyancy = %f", b)
	}
}

func TestFloats(t *testing.T) {
	env := DefaultEnvironment()
	for _, tt := range []struct {
		V, mass float64
		exp     bool
	}{{0.42, 48.2, true}, {0.99, 998.9, false}, {0.3, 299.9, true}} {
		if ok, err := env.Floats(tt.V, tt.mass); err != nil || ok != tt.exp {
			t.Fatalf("Floats(%f, %f) = %v (err=%v)", tt.V, tt.mass, ok, err)
		}
	}
	_, err := env.Floats(0, 1)
	assertInvalid(t, err, "Floats(V=0)")
	_, err = env.Floats(1, -1)
	assertInvalid(t, err, "Floats(mass<0)")
}

func TestPressure(t *testing.T) {
	env := DefaultEnvironment()
	for _, tt := range []struct{ depth, exp float64 }{{-1, 9810}, {2, 19620}, {-3, 29430}, {0, 0}} {
		if p, err := env.Pressure(tt.depth); err != nil || !scalar.EqualWithinAbs(p, tt.exp, 1e-9) {
			t.Fatalf("Pressure(%f) = %f (err=%v)", tt.depth, p, err)
		}
	}
	if p, err := env.AbsolutePressure(-10); err != nil || !scalar.EqualWithinAbs(p, 101325+98100, 1e-9) {
		t.Fatalf("AbsolutePressure(-10) = %f (err=%v)", p, err)
	}
	_, err := env.Pressure(math.NaN())
	assertInvalid(t, err, "Pressure(NaN)")
}

func TestNetBuoyancy(t *testing.T) {
	env := DefaultEnvironment()
	veh := DefaultVehicle(1, 0.5)
	// 100 kg displacing 0.1 m^3 of fresh water is neutrally buoyant.
	if b, err := veh.NetBuoyancy(env, 0.1); err != nil || !scalar.EqualWithinAbs(b, 0, 1e-9) {
		t.Fatalf("net buoyancy = %f (err=%v)", b, err)
	}
	if b, _ := veh.NetBuoyancy(env, 0.2); !scalar.EqualWithinAbs(b, 981, 1e-9) {
		t.Fatalf("net buoyancy = %f", b)
	}
	_, err := veh.NetBuoyancy(env, 0)
	assertInvalid(t, err, "NetBuoyancy(V=0)")
	if err := env.Validate(); err != nil {
		t.Fatal(err)
	}
	assertInvalid(t, Environment{}.Validate(), "zero environment")
}

func TestInvalidEnvironment(t *testing.T) {
	for _, env := range []Environment{{}, {G: 9.81, WaterDensity: 1000}, {G: math.NaN(), WaterDensity: 1000, AtmosphericPressure: 101325}} {
		_, err := env.Buoyancy(1000, 0.1)
		assertInvalid(t, err, fmt.Sprintf("%+v Buoyancy", env))
		_, err = env.Floats(0.1, 10)
		assertInvalid(t, err, fmt.Sprintf("%+v Floats", env))
		_, err = env.Pressure(10)
		assertInvalid(t, err, fmt.Sprintf("%+v Pressure", env))
		_, err = env.AbsolutePressure(10)
		assertInvalid(t, err, fmt.Sprintf("%+v AbsolutePressure", env))
		_, err = DefaultVehicle(1, 1).NetBuoyancy(env, 0.1)
		assertInvalid(t, err, fmt.Sprintf("%+v NetBuoyancy", env))
	}
}
