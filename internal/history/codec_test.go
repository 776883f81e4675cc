package history

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-reflex/internal/core"
)

func sampleBuckets() Buckets {
	g332 := core.NewGridConfig(3, 3, 2)
	g443 := core.NewGridConfig(4, 4, 3)
	return Buckets{
		g332: {
			core.NewRecord(2, 7, 3120, g332),
			core.NewRecord(1, 4, 1800, g332),
		},
		g443: {
			core.NewRecord(1, 12, 6400, g443),
		},
	}
}

func TestEncodeFormat(t *testing.T) {
	got := Encode(sampleBuckets())
	expected := "1,2,7,3120,3,3,2\n1,1,4,1800,3,3,2\n1,1,12,6400,4,4,3"

	if got != expected {
		t.Errorf("Encode() = %q, expected %q", got, expected)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	original := sampleBuckets()

	decoded, err := Decode(Encode(original))
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if diff := cmp.Diff(original, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	// Encoding is stable, so the text form round trips as well.
	text := Encode(original)
	if again := Encode(decoded); again != text {
		t.Errorf("Encode(Decode(x)) = %q, expected %q", again, text)
	}
}

func TestDecodeEmpty(t *testing.T) {
	for _, input := range []string{"", "\n", "  "} {
		b, err := Decode(input)
		if err != nil {
			t.Errorf("Decode(%q) failed: %v", input, err)
		}
		if len(b) != 0 {
			t.Errorf("Decode(%q) = %v, expected empty", input, b)
		}
	}
}

func TestDecodeTrailingNewline(t *testing.T) {
	b, err := Decode("1,1,4,900,3,3,2\n")
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	if got := b[core.NewGridConfig(3, 3, 2)]; len(got) != 1 || got[0].Score != 4 {
		t.Errorf("Decode() bucket = %v", got)
	}
}

func TestDecodeClampsActive(t *testing.T) {
	b, err := Decode("1,1,5,100,3,3,20")
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}
	grid := core.NewGridConfig(3, 3, 8)
	expected := []core.Record{{Position: 1, Score: 5, Millis: 100, Rows: 3, Columns: 3, Active: 8}}
	if diff := cmp.Diff(expected, b[grid]); diff != "" {
		t.Errorf("Decode() bucket %s mismatch (-want +got):\n%s", grid, diff)
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"missing field", "1,1,4,900,3,3"},
		{"extra field", "1,1,4,900,3,3,2,9"},
		{"unknown version", "2,1,4,900,3,3,2"},
		{"not a number", "1,1,four,900,3,3,2"},
		{"negative millis", "1,1,4,-900,3,3,2"},
		{"zero position", "1,0,4,900,3,3,2"},
		{"degenerate grid", "1,1,4,900,1,1,0"},
		{"single row", "1,1,5,100,1,5,2"},
		{"single column", "1,1,5,100,5,1,2"},
		{"no active cells", "1,1,5,100,3,3,0"},
		{"one bad line poisons all", "1,1,4,900,3,3,2\ngarbage\n1,2,5,1000,3,3,2"},
		{"blank line in the middle", "1,1,4,900,3,3,2\n\n1,2,5,1000,3,3,2"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b, err := Decode(tc.input)
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("Decode(%q) error = %v, expected ErrMalformed", tc.input, err)
			}
			if b != nil {
				t.Errorf("Decode(%q) returned partial data: %v", tc.input, b)
			}
		})
	}
}

func TestBucketsGridsOrder(t *testing.T) {
	b := sampleBuckets()
	b[core.NewGridConfig(3, 3, 1)] = []core.Record{core.NewRecord(1, 2, 10, core.NewGridConfig(3, 3, 1))}
	b[core.NewGridConfig(5, 5, 5)] = nil

	got := b.Grids()
	expected := []core.GridConfig{
		core.NewGridConfig(3, 3, 1),
		core.NewGridConfig(3, 3, 2),
		core.NewGridConfig(4, 4, 3),
	}
	if diff := cmp.Diff(expected, got); diff != "" {
		t.Errorf("Grids() mismatch (-want +got):\n%s", diff)
	}
}
