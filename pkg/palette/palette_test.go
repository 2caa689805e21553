package palette

import (
	"slices"
	"testing"
)

func TestResolve_Named(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  [3]uint8
	}{
		{"red", "red", [3]uint8{255, 107, 107}},
		{"red uppercase", "RED", [3]uint8{255, 107, 107}},
		{"red mixed case", "ReD", [3]uint8{255, 107, 107}},
		{"blue", "blue", [3]uint8{116, 185, 255}},
		{"cyan", "cyan", [3]uint8{0, 206, 201}},
		{"yellow", "yellow", [3]uint8{253, 203, 110}},
		{"gray", "gray", [3]uint8{178, 190, 195}},
		{"grey alias", "grey", [3]uint8{178, 190, 195}},
		{"black", "black", [3]uint8{45, 52, 54}},
		{"white", "white", [3]uint8{255, 255, 255}},
		{"surrounding whitespace", "  green ", [3]uint8{85, 163, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := Resolve(tt.token).RGB255()
			if got := [3]uint8{r, g, b}; got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolve_Hex(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  [3]uint8
	}{
		{"uppercase", "#FF5733", [3]uint8{255, 87, 51}},
		{"lowercase", "#00ff00", [3]uint8{0, 255, 0}},
		{"mixed case", "#AbCdEf", [3]uint8{171, 205, 239}},
		{"black", "#000000", [3]uint8{0, 0, 0}},
		{"white", "#ffffff", [3]uint8{255, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b := Resolve(tt.token).RGB255()
			if got := [3]uint8{r, g, b}; got != tt.want {
				t.Errorf("Resolve(%q) = %v, want %v", tt.token, got, tt.want)
			}
		})
	}
}

func TestResolve_Fallback(t *testing.T) {
	tokens := []string{
		"",
		"   ",
		"notacolor",
		"magenta",
		"#fff",
		"#gggggg",
		"#ff573",
		"#ff57333",
		"ff5733",
	}

	wantR, wantG, wantB := Default.RGB255()
	if wantR != 45 || wantG != 45 || wantB != 55 {
		t.Fatalf("Default = (%d, %d, %d), want (45, 45, 55)", wantR, wantG, wantB)
	}

	for _, token := range tokens {
		if got := Resolve(token); got != Default {
			t.Errorf("Resolve(%q) = %v, want Default %v", token, got, Default)
		}
		// Resolution is idempotent.
		if first, second := Resolve(token), Resolve(token); first != second {
			t.Errorf("Resolve(%q) not stable: %v then %v", token, first, second)
		}
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if !slices.IsSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, want := range []string{"red", "pink", "purple", "blue", "cyan", "green", "yellow", "orange", "brown", "gray", "grey", "black", "white"} {
		if !slices.Contains(names, want) {
			t.Errorf("Names() missing %q", want)
		}
	}
}
