package testutil

import (
	"os"
	"testing"
)

func TestEnvelope(t *testing.T) {
	dc := Envelope(0, 10)
	if dc[0] != 1 {
		t.Fatalf("dc[0] = %v, want 1", dc[0])
	}
	for i := 1; i < len(dc); i++ {
		if dc[i] <= dc[i-1] {
			t.Fatalf("dc ramp not increasing at %d", i)
		}
	}

	h2 := Envelope(2, 60)
	if h2[30] != 0.5 {
		t.Fatalf("h2 peak = %v, want 0.5", h2[30])
	}
	for i, v := range h2 {
		if v <= 0 || v > 0.5 {
			t.Fatalf("h2[%d] = %v out of range", i, v)
		}
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 1.0, 64)
	b := DeterministicNoise(42, 1.0, 64)
	if len(a) != 64 {
		t.Fatalf("len = %d, want 64", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("noise not deterministic at index %d", i)
		}
	}
}

func TestDeterministicNoiseDifferentSeeds(t *testing.T) {
	a := DeterministicNoise(1, 1.0, 16)
	b := DeterministicNoise(2, 1.0, 16)
	same := true
	for i := range a {
		if a[i] != b[i] {
			same = false
			break
		}
	}
	if same {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestRows(t *testing.T) {
	rows := Rows([]float64{5, 6}, []float64{7, 8})
	want := [][]float64{{0, 5, 7}, {1, 6, 8}}
	for i := range want {
		RequireSliceNearlyEqual(t, rows[i], want[i], 0)
	}
	if Rows() != nil {
		t.Fatal("Rows() without columns should be nil")
	}
}

func TestTable(t *testing.T) {
	tbl := Table(t, Rows([]float64{1, 2, 3}))
	if tbl.Rows() != 3 || tbl.Cols() != 2 {
		t.Fatalf("dims = %dx%d, want 3x2", tbl.Rows(), tbl.Cols())
	}
}

func TestWriteRows(t *testing.T) {
	path := WriteRows(t, t.TempDir(), "s.txt", [][]float64{{0, 1.5}, {1, -2e-9}})
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got, want := string(b), "0 1.5\n1 -2e-09\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
}
