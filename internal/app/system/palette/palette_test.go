package palette

import "testing"

func TestTech_WrapsAround(t *testing.T) {
	n := TechSize()
	if n != 6 {
		t.Fatalf("TechSize: got %d, want 6", n)
	}
	for i := 0; i < n; i++ {
		if Tech(i) != Tech(i+n) {
			t.Errorf("Tech(%d) != Tech(%d)", i, i+n)
		}
	}
	if Tech(0) != "bg-purple-100 hover:bg-purple-200" {
		t.Errorf("Tech(0): got %q", Tech(0))
	}
	if Tech(6) != Tech(0) {
		t.Errorf("Tech(6): got %q, want %q", Tech(6), Tech(0))
	}
}

func TestTech_Negative(t *testing.T) {
	if got := Tech(-1); got != Neutral {
		t.Errorf("Tech(-1): got %q, want %q", got, Neutral)
	}
}

func TestMainCategory(t *testing.T) {
	if got := MainCategory("IH"); got != "bg-red-200 hover:bg-red-300" {
		t.Errorf("MainCategory(IH): got %q", got)
	}
	if got := MainCategory("AN"); got != "bg-pink-200 hover:bg-pink-300" {
		t.Errorf("MainCategory(AN): got %q", got)
	}
	if got := MainCategory("ZZ"); got != Neutral {
		t.Errorf("MainCategory(ZZ): got %q, want Neutral", got)
	}
}

func TestComplexityBadge(t *testing.T) {
	tests := map[int]string{
		3: "bg-red-300",
		2: "bg-yellow-300",
		1: "bg-green-300",
		0: "bg-green-300",
	}
	for in, want := range tests {
		if got := ComplexityBadge(in); got != want {
			t.Errorf("ComplexityBadge(%d): got %q, want %q", in, got, want)
		}
	}
}

func TestComplexityPill(t *testing.T) {
	if got := ComplexityPill(3); got != "bg-red-100 text-red-800" {
		t.Errorf("ComplexityPill(3): got %q", got)
	}
	if got := ComplexityPill(0); got != "bg-green-100 text-green-800" {
		t.Errorf("ComplexityPill(0): got %q", got)
	}
}
