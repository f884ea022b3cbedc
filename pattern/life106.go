package pattern

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/sparse-gol/model"
)

// Header is the first line every Life 1.06 pattern file starts with
const Header = model.DefaultHeader

const zstdSuffix = ".zst"

// ErrInvalidPattern is returned for any malformed Life 1.06 input
var ErrInvalidPattern = errors.New("invalid Life 1.06 pattern")

// Parse reads a Life 1.06 pattern and returns its live cells in file order
func Parse(r io.Reader) ([]model.Coordinate, error) {
	var (
		cells      []model.Coordinate
		sawHeader  bool
		lineNumber int
		scanner    = bufio.NewScanner(r)
	)

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if !sawHeader {
			if line != Header {
				return nil, errors.Wrapf(ErrInvalidPattern, "line %d: expected header %q, got %q", lineNumber, Header, line)
			}
			sawHeader = true
			continue
		}
		if strings.HasPrefix(line, "#") {
			continue
		}

		c, err := parseCell(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		cells = append(cells, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[Parse] failed to read pattern")
	}
	if !sawHeader {
		return nil, errors.Wrap(ErrInvalidPattern, "missing header")
	}

	return cells, nil
}

// Load reads a pattern file. Files ending in .zst are zstd-decompressed first.
func Load(path string) ([]model.Coordinate, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to open pattern: %+v", path)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, zstdSuffix) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, errors.Wrapf(err, "[Load] failed to open zstd stream: %+v", path)
		}
		defer dec.Close()
		r = dec
	}

	cells, err := Parse(r)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to parse pattern: %+v", path)
	}
	return cells, nil
}

func parseCell(line string) (model.Coordinate, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return model.Coordinate{}, errors.Wrapf(ErrInvalidPattern, "expected \"<x> <y>\", got %q", line)
	}

	x, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return model.Coordinate{}, errors.Wrapf(ErrInvalidPattern, "bad x %q: %v", fields[0], err)
	}
	y, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return model.Coordinate{}, errors.Wrapf(ErrInvalidPattern, "bad y %q: %v", fields[1], err)
	}
	return model.NewCoordinate(x, y), nil
}
