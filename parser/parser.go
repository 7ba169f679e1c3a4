// Package parser turns the TAB-separated road map input into a
// core.RoadMap and back.
//
// Input format (one record per line, empty lines ignored):
//
//	line 0:    end<TAB>start
//	lines 1..: from<TAB>to<TAB>distance<TAB>id
//
// distance and id are base-10 32-bit integers. Trailing extra fields are
// ignored. Malformed input is reported with a wrapped sentinel error that
// carries the 1-based record number; there is no partial result.
package parser

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/roadmap/core"
)

// Sentinel errors for parsing.
var (
	// ErrEmptyInput indicates there is no header line.
	ErrEmptyInput = errors.New("parser: empty input")

	// ErrMalformedHeader indicates line 0 is not "end<TAB>start".
	ErrMalformedHeader = errors.New("parser: malformed header")

	// ErrMalformedRecord indicates a road line is not "from<TAB>to<TAB>distance<TAB>id".
	ErrMalformedRecord = errors.New("parser: malformed road record")
)

const (
	fieldSep     = "\t"
	headerFields = 2
	recordFields = 4
	maxLineBytes = 1 << 20
)

// ReadLines reads r line by line, trims surrounding whitespace and drops
// empty lines.
func ReadLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("parser: read: %w", err)
	}

	return lines, nil
}

// ReadFile opens path and returns ReadLines of its content.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("parser: open %q: %w", path, err)
	}
	defer f.Close()

	return ReadLines(f)
}

// Parse builds a RoadMap from pre-read lines.
func Parse(lines []string) (*core.RoadMap, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}

	end, start, err := parseHeader(lines[0])
	if err != nil {
		return nil, err
	}

	roads := make([]core.Road, 0, len(lines)-1)
	for i, line := range lines[1:] {
		road, err := ParseRoad(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+2, err)
		}
		roads = append(roads, road)
	}

	return core.NewRoadMap(start, end, roads), nil
}

// parseHeader splits "end<TAB>start".
func parseHeader(line string) (end, start string, err error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < headerFields || fields[0] == "" || fields[1] == "" {
		return "", "", fmt.Errorf("line 1: %w: %q", ErrMalformedHeader, line)
	}

	return fields[0], fields[1], nil
}

// ParseRoad parses one "from<TAB>to<TAB>distance<TAB>id" record.
func ParseRoad(line string) (core.Road, error) {
	fields := strings.Split(line, fieldSep)
	if len(fields) < recordFields {
		return core.Road{}, fmt.Errorf("%w: want %d fields, got %d: %q",
			ErrMalformedRecord, recordFields, len(fields), line)
	}
	from, to := fields[0], fields[1]
	if from == "" || to == "" {
		return core.Road{}, fmt.Errorf("%w: empty location: %q", ErrMalformedRecord, line)
	}

	distance, err := strconv.ParseInt(fields[2], 10, 32)
	if err != nil {
		return core.Road{}, fmt.Errorf("%w: distance: %w", ErrMalformedRecord, err)
	}
	id, err := strconv.ParseInt(fields[3], 10, 32)
	if err != nil {
		return core.Road{}, fmt.Errorf("%w: id: %w", ErrMalformedRecord, err)
	}

	return core.Road{ID: int(id), Distance: distance, From: from, To: to}, nil
}

// Format renders the inverse of Parse: a header line followed by one line
// per road.
func Format(start, end string, roads []core.Road) []string {
	lines := make([]string, 0, len(roads)+1)
	lines = append(lines, end+fieldSep+start)
	for _, r := range roads {
		lines = append(lines, r.String())
	}

	return lines
}
