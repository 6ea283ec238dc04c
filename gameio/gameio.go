// Package gameio reads board files and writes search results.
package gameio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/domino14/morris/board"
	"github.com/domino14/morris/solver"
)

var ErrEmptyInput = errors.New("board file is empty")

// ReadBoardFrom reads the first line of r as a board. Files with a UTF-8
// or UTF-16 byte order mark are decoded accordingly; anything else is read
// as ISO 8859-1, so a stray non-ASCII byte is still a single point.
func ReadBoardFrom(r io.Reader) (board.Position, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(charmap.ISO8859_1.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return board.Position{}, err
		}
		return board.Position{}, ErrEmptyInput
	}
	line := strings.TrimRight(scanner.Text(), "\r")
	return board.FromString(strings.Map(normalizeRune, line))
}

// normalizeRune maps every character to a single byte so that the board
// length is counted in characters.
func normalizeRune(r rune) rune {
	if r == 'W' || r == 'B' {
		return r
	}
	return 'x'
}

// ReadBoardsFrom reads one board per line. Blank lines and lines starting
// with # are skipped.
func ReadBoardsFrom(r io.Reader) ([]board.Position, error) {
	decoded := transform.NewReader(r, unicode.BOMOverride(charmap.ISO8859_1.NewDecoder()))
	scanner := bufio.NewScanner(decoded)
	var positions []board.Position
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		pos, err := board.FromString(strings.Map(normalizeRune, line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		positions = append(positions, pos)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(positions) == 0 {
		return nil, ErrEmptyInput
	}
	return positions, nil
}

func ReadBoards(filename string) ([]board.Position, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	positions, err := ReadBoardsFrom(f)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", filename, err)
	}
	return positions, nil
}

// ReadBoard reads the board stored on the first line of filename.
func ReadBoard(filename string) (board.Position, error) {
	f, err := os.Open(filename)
	if err != nil {
		return board.Position{}, err
	}
	defer f.Close()
	pos, err := ReadBoardFrom(f)
	if err != nil {
		return board.Position{}, fmt.Errorf("reading %s: %w", filename, err)
	}
	log.Debug().Str("filename", filename).Str("pos", pos.String()).Msg("read-board")
	return pos, nil
}

// FormatResult renders a result in the three-line format graders expect.
func FormatResult(res *solver.Result) string {
	var sb strings.Builder
	pos := "none"
	if res.Position != nil {
		pos = res.Position.String()
	}
	fmt.Fprintf(&sb, "Board Position: %s\n", pos)
	fmt.Fprintf(&sb, "Positions evaluated by static estimation: %d.\n", res.Nodes)
	fmt.Fprintf(&sb, "MINIMAX estimate: %d.\n", res.Score)
	return sb.String()
}

func WriteResultTo(w io.Writer, res *solver.Result) error {
	_, err := io.WriteString(w, FormatResult(res))
	return err
}

// WriteResult writes res to filename, replacing any existing file.
func WriteResult(filename string, res *solver.Result) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := WriteResultTo(f, res); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return f.Close()
}

// WriteSVG renders pos as an SVG file.
func WriteSVG(filename string, pos board.Position) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	w := bufio.NewWriter(f)
	board.RenderSVG(w, pos)
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", filename, err)
	}
	return f.Close()
}
