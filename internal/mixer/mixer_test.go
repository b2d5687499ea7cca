package mixer

import "testing"

func TestMixCommutes(t *testing.T) {
	a := []int32{1, 2, 3}
	b := []int32{10, 20, 30}
	ab := Mix([][]int32{a, b}, false)
	ba := Mix([][]int32{b, a}, false)
	for i := range ab {
		if ab[i] != ba[i] {
			t.Fatalf("mix not commutative at %d: %d vs %d", i, ab[i], ba[i])
		}
	}
}

func TestMixAssociates(t *testing.T) {
	a := []int32{1, 2, 3}
	b := []int32{10, 20, 30}
	c := []int32{100, 200, 300}

	abc := Mix([][]int32{Mix([][]int32{a, b}, false), c}, false)
	a_bc := Mix([][]int32{a, Mix([][]int32{b, c}, false)}, false)
	for i := range abc {
		if abc[i] != a_bc[i] {
			t.Fatalf("mix not associative at %d: %d vs %d", i, abc[i], a_bc[i])
		}
	}
}

func TestMixDifferentLengths(t *testing.T) {
	a := []int32{1, 1, 1}
	b := []int32{5}
	out := Mix([][]int32{a, b}, false)
	if len(out) != 3 {
		t.Fatalf("got length %d, want 3", len(out))
	}
	if out[0] != 6 || out[1] != 1 || out[2] != 1 {
		t.Errorf("got %v, want [6 1 1]", out)
	}
}

// S5 mixing & normalisation.
func TestMixS5AutoNormalize(t *testing.T) {
	n := 96000
	a := make([]int32, n)
	b := make([]int32, n)
	for i := range a {
		a[i] = 1 << 22 // arbitrary large per-partial sample
		b[i] = 1 << 22
	}
	out := Mix([][]int32{a, b}, true)
	if len(out) != n {
		t.Fatalf("got length %d, want %d", len(out), n)
	}
	const max24 = 1<<23 - 1
	for i, v := range out {
		if v < 0 {
			v = -v
		}
		if v > max24 {
			t.Fatalf("sample %d = %d exceeds 24-bit range", i, out[i])
		}
	}
	// Each partial right-shifted by ceil(log2(2))=1 before summing:
	// (1<<22 >> 1) + (1<<22 >> 1) = 1<<22.
	want := int32(1 << 22)
	if out[0] != want {
		t.Errorf("out[0] = %d, want %d", out[0], want)
	}
}

func TestCeilLog2(t *testing.T) {
	cases := map[int]int{1: 0, 2: 1, 3: 2, 4: 2, 5: 3, 8: 3, 9: 4}
	for n, want := range cases {
		if got := ceilLog2(n); got != want {
			t.Errorf("ceilLog2(%d) = %d, want %d", n, got, want)
		}
	}
}
