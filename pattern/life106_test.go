package pattern

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
)

const gliderText = `#Life 1.06
# glider heading south-east
0 -1
1 0
-1 1

0 1
1 1
`

func TestParseGlider(t *testing.T) {
	cells, err := Parse(strings.NewReader(gliderText))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !slices.Equal(cells, model.Glider()) {
		t.Fatalf("cells = %v, want %v", cells, model.Glider())
	}
}

func TestParseExtremeCoordinates(t *testing.T) {
	in := "#Life 1.06\n9223372036854775807 -9223372036854775808\n"
	cells, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []model.Coordinate{{X: math.MaxInt64, Y: math.MinInt64}}
	if !slices.Equal(cells, want) {
		t.Fatalf("cells = %v, want %v", cells, want)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"empty", ""},
		{"wrong header", "#Life 1.05\n0 0\n"},
		{"missing header", "0 0\n"},
		{"one field", "#Life 1.06\n5\n"},
		{"three fields", "#Life 1.06\n1 2 3\n"},
		{"not a number", "#Life 1.06\nx 2\n"},
		{"overflow", "#Life 1.06\n9223372036854775808 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !errors.Is(err, ErrInvalidPattern) {
				t.Fatalf("error %v does not wrap ErrInvalidPattern", err)
			}
		})
	}
}

func TestParseReportsLineNumber(t *testing.T) {
	_, err := Parse(strings.NewReader("#Life 1.06\n0 0\n\nbad line here\n"))
	if err == nil || !strings.Contains(err.Error(), "line 4") {
		t.Fatalf("error = %v, want it to mention line 4", err)
	}
}

func TestRoundTripThroughRenderer(t *testing.T) {
	world := model.NewWorld(model.Glider())
	world.Step()

	var buf bytes.Buffer
	if err := (&model.Life106Renderer{Header: Header}).Display(&buf, world); err != nil {
		t.Fatalf("Display: %v", err)
	}

	cells, err := Parse(&buf)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !slices.Equal(cells, world.LiveCells()) {
		t.Fatalf("cells = %v, want %v", cells, world.LiveCells())
	}
}

func TestLoadPlainAndCompressed(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "glider.lif")
	if err := os.WriteFile(plain, []byte(gliderText), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatalf("zstd writer: %v", err)
	}
	compressed := filepath.Join(dir, "glider.lif.zst")
	if err := os.WriteFile(compressed, enc.EncodeAll([]byte(gliderText), nil), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	enc.Close()

	for _, path := range []string{plain, compressed} {
		cells, err := Load(path)
		if err != nil {
			t.Fatalf("Load(%s): %v", path, err)
		}
		if !slices.Equal(cells, model.Glider()) {
			t.Fatalf("Load(%s) = %v, want %v", path, cells, model.Glider())
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.lif"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, want os.ErrNotExist", err)
	}
}
