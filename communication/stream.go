package communication

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"woodland/game"
)

// StreamCommunicator reads one action envelope per line and writes one
// outcome per line. Blank lines and lines starting with '#' are skipped.
type StreamCommunicator struct {
	scanner *bufio.Scanner
	w       io.Writer
	line    int
	failed  bool
}

func NewStreamCommunicator(r io.Reader, w io.Writer) *StreamCommunicator {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &StreamCommunicator{scanner: scanner, w: w}
}

// ReceiveAction returns io.EOF at the end of input. A read error is reported
// once, after which the stream is treated as ended.
func (c *StreamCommunicator) ReceiveAction() (game.Action, error) {
	if c.failed {
		return nil, io.EOF
	}
	for c.scanner.Scan() {
		c.line++
		text := bytes.TrimSpace(c.scanner.Bytes())
		if len(text) == 0 || text[0] == '#' {
			continue
		}
		a, err := DecodeAction(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", c.line, err)
		}
		return a, nil
	}
	if err := c.scanner.Err(); err != nil {
		c.failed = true
		return nil, fmt.Errorf("read actions: %w", err)
	}
	return nil, io.EOF
}

func (c *StreamCommunicator) SendOutcome(out *game.Outcome) error {
	data, err := EncodeOutcome(out)
	if err != nil {
		return err
	}
	return c.writeLine(data)
}

func (c *StreamCommunicator) SendError(a game.Action, cause error) error {
	data, err := EncodeError(a, cause)
	if err != nil {
		return err
	}
	return c.writeLine(data)
}

func (c *StreamCommunicator) writeLine(data []byte) error {
	if _, err := c.w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write outcome: %w", err)
	}
	return nil
}
