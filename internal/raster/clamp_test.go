package raster

import "testing"

func TestClampFloat64(t *testing.T) {
	if got := Clamp(5.0, 0.0, 10.0); got != 5.0 {
		t.Errorf("Clamp(5,0,10) = %v; want 5", got)
	}
	if got := Clamp(-1.0, 0.0, 10.0); got != 0.0 {
		t.Errorf("Clamp(-1,0,10) = %v; want 0", got)
	}
	if got := Clamp(11.0, 0.0, 10.0); got != 10.0 {
		t.Errorf("Clamp(11,0,10) = %v; want 10", got)
	}
}

func TestClampFloat32(t *testing.T) {
	if got := Clamp(float32(5), float32(0), float32(10)); got != 5 {
		t.Errorf("Clamp(5,0,10) = %v; want 5", got)
	}
}
