package contenthash

import "testing"

func TestTossupDeterministic(t *testing.T) {
	first := Tossup("What organelle...", "Mitochondria", "Jane Doe, Biology")
	second := Tossup("What organelle...", "Mitochondria", "Jane Doe, Biology")
	if first != second {
		t.Fatalf("hash not deterministic: %s != %s", first, second)
	}
	if len(first) != 64 {
		t.Fatalf("expected 64-char hex digest, got %d chars", len(first))
	}
}

func TestTossupFieldsDiverge(t *testing.T) {
	base := Tossup("question", "answer", "metadata")
	variants := []string{
		Tossup("question!", "answer", "metadata"),
		Tossup("question", "answer!", "metadata"),
		Tossup("question", "answer", "metadata!"),
	}
	for i, variant := range variants {
		if variant == base {
			t.Fatalf("variant %d collided with base hash", i)
		}
	}
}

func TestTossupFieldBoundaries(t *testing.T) {
	if Tossup("ab", "c", "m") == Tossup("a", "bc", "m") {
		t.Fatal("field boundary ambiguity: shifted fields hashed identically")
	}
}

func TestBonusCoversAllParts(t *testing.T) {
	base := Bonus("leadin", []string{"p1", "p2"}, []string{"a1", "a2"}, "meta")
	if base != Bonus("leadin", []string{"p1", "p2"}, []string{"a1", "a2"}, "meta") {
		t.Fatal("bonus hash not deterministic")
	}
	changedPart := Bonus("leadin", []string{"p1", "p2x"}, []string{"a1", "a2"}, "meta")
	if changedPart == base {
		t.Fatal("changing a part did not change the hash")
	}
	changedAnswer := Bonus("leadin", []string{"p1", "p2"}, []string{"a1", "a2x"}, "meta")
	if changedAnswer == base {
		t.Fatal("changing an answer did not change the hash")
	}
}

func TestBonusPartCountMatters(t *testing.T) {
	two := Bonus("l", []string{"p1", "p2"}, []string{"a1", "a2"}, "m")
	three := Bonus("l", []string{"p1", "p2", ""}, []string{"a1", "a2"}, "m")
	if two == three {
		t.Fatal("adding an empty part did not change the hash")
	}
}
