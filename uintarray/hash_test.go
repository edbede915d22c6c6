package uintarray

import "testing"

func TestHash(t *testing.T) {
	t.Parallel()
	a := mustExtend(t, New[uint8](), 1, 2, 3)
	b := mustExtend(t, New[uint8](), 1, 2, 3)
	c := mustExtend(t, New[uint8](), 1, 2, 4)

	if a.Hash() != b.Hash() {
		t.Errorf("equal arrays should have the same hash: %d != %d", a.Hash(), b.Hash())
	}
	if a.Hash() == c.Hash() {
		t.Errorf("different arrays should likely have different hashes: %d == %d", a.Hash(), c.Hash())
	}
}

func TestHashDiscriminatesWidth(t *testing.T) {
	t.Parallel()
	narrow, err := NewWithWidth(1)
	if err != nil {
		t.Fatal(err)
	}
	wide, err := NewWithWidth(2)
	if err != nil {
		t.Fatal(err)
	}

	if narrow.Hash() == wide.Hash() {
		t.Error("empty arrays of different widths should likely have different hashes")
	}
}

func TestHashWithSeed(t *testing.T) {
	t.Parallel()
	a := mustExtend(t, New[uint16](), 500, 600)
	b := mustExtend(t, New[uint16](), 500, 600)

	if a.HashWithSeed(1) != b.HashWithSeed(1) {
		t.Error("same seed on equal arrays should produce the same hash")
	}
	if a.HashWithSeed(1) == a.HashWithSeed(2) {
		t.Error("different seeds should likely produce different hashes")
	}
}
