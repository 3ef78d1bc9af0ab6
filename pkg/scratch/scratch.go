// Package scratch runs a write/read/delete cycle against a temporary file
// holding a few text lines followed by a binary payload.
package scratch

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// DefaultName is the scratch file used when none is configured.
const DefaultName = "test_gruvbox.txt"

// MaxLineSize is the read-back line buffer size. Longer lines are returned
// in chunks of MaxLineSize-1 bytes.
const MaxLineSize = 1024

// ErrOpen wraps failures to open or create the scratch file.
var ErrOpen = errors.New("failed to open scratch file")

// Payload is the binary block written after the text header.
var Payload = [4]int32{0xFF, 0x00, 0xAB, 0xCD}

// Header holds the text lines written before the payload.
type Header struct {
	Title    string
	Version  string
	Platform string
}

// Lines returns the header as the exact lines written to the file.
func (h Header) Lines() []string {
	return []string{
		h.Title,
		"Version: " + h.Version,
		"Platform: " + h.Platform,
	}
}

// Cycle creates (or truncates) path, writes hdr and Payload, rewinds, reads
// back the text lines, then closes and removes the file. Reading stops at the
// first line that is not text; overlong lines are returned in chunks.
func Cycle(path string, hdr Header) ([]string, error) {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}

	lines, err := writeAndRead(f, hdr)
	err = errors.Join(err, f.Close())
	if rmErr := os.Remove(path); rmErr != nil {
		err = errors.Join(err, fmt.Errorf("failed to remove scratch file: %w", rmErr))
	}
	return lines, err
}

func writeAndRead(f *os.File, hdr Header) ([]string, error) {
	w := bufio.NewWriter(f)
	for _, line := range hdr.Lines() {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return nil, fmt.Errorf("failed to write header: %w", err)
		}
	}
	if err := binary.Write(w, binary.LittleEndian, Payload); err != nil {
		return nil, fmt.Errorf("failed to write payload: %w", err)
	}
	if err := w.Flush(); err != nil {
		return nil, fmt.Errorf("failed to flush scratch file: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind scratch file: %w", err)
	}
	return readText(f)
}

// readText returns the text lines of r. Lines longer than MaxLineSize-1
// bytes come back as several chunks, the way a fixed line buffer splits
// them. Reading stops at the first chunk that is not text.
func readText(r io.Reader) ([]string, error) {
	cr := &chunkReader{br: bufio.NewReader(r)}
	var lines []string
	prevCut := false
	for {
		chunk, cut, err := cr.next()
		if err != nil && !errors.Is(err, io.EOF) {
			return lines, fmt.Errorf("failed to read scratch file: %w", err)
		}
		if err != nil && len(chunk) == 0 {
			return lines, nil
		}
		// A newline right after a cut chunk only ends that line.
		if !prevCut || len(chunk) > 0 {
			if !isText(chunk) {
				return lines, nil
			}
			lines = append(lines, string(chunk))
		}
		if err != nil {
			return lines, nil
		}
		prevCut = cut
	}
}

type chunkReader struct {
	br      *bufio.Reader
	pending []byte
}

// next reads up to a newline or MaxLineSize-1 bytes. cut reports that the
// chunk stopped before a newline. A rune split by the cut is carried over to
// the following chunk.
func (cr *chunkReader) next() (chunk []byte, cut bool, err error) {
	chunk, cr.pending = cr.pending, nil
	for len(chunk) < MaxLineSize-1 {
		b, err := cr.br.ReadByte()
		if err != nil {
			return chunk, false, err
		}
		if b == '\n' {
			return chunk, false, nil
		}
		chunk = append(chunk, b)
	}
	if i := lastRuneStart(chunk); i > 0 && !utf8.FullRune(chunk[i:]) {
		cr.pending = append([]byte(nil), chunk[i:]...)
		chunk = chunk[:i]
	}
	return chunk, true, nil
}

func lastRuneStart(b []byte) int {
	for i := len(b) - 1; i >= 0 && i >= len(b)-utf8.UTFMax; i-- {
		if utf8.RuneStart(b[i]) {
			return i
		}
	}
	return -1
}

func isText(line []byte) bool {
	return bytes.IndexByte(line, 0) < 0 && utf8.Valid(line)
}
