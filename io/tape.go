package io

import (
	"bufio"
	"bytes"
	"errors"
	"io"
)

// Tape provides line input from an io.Reader and raw output to an io.Writer.
// Prompts, when enabled, are written to Prompt after the pending output line
// has been terminated.
type Tape struct {
	Input  io.Reader
	Output io.Writer
	Prompt io.Writer // If set, receives prompts.

	reader *bufio.Reader
	column int // Bytes written since the last newline.
}

var _ Channel = (*Tape)(nil)

// Rewind drops buffered input and the output column. Call it after
// replacing Input.
func (tc *Tape) Rewind() {
	tc.reader = nil
	tc.column = 0
}

// Newline terminates the current output line, if one is open.
func (tc *Tape) Newline() (err error) {
	if tc.column == 0 || tc.Output == nil {
		return
	}

	_, err = tc.Output.Write([]byte{'\n'})
	tc.column = 0
	return
}

// Receive reads the next line from Input, trimmed of surrounding space.
// At end of input with nothing read, ErrChannelClosed is returned.
func (tc *Tape) Receive(prompt string) (line []byte, err error) {
	if tc.Input == nil {
		err = ErrChannelClosed
		return
	}

	if tc.reader == nil {
		tc.reader = bufio.NewReader(tc.Input)
	}

	if tc.Prompt != nil && len(prompt) != 0 {
		err = tc.Newline()
		if err != nil {
			return
		}
		_, err = io.WriteString(tc.Prompt, prompt)
		if err != nil {
			return
		}
	}

	text, err := tc.reader.ReadBytes('\n')
	if errors.Is(err, io.EOF) {
		if len(text) == 0 {
			err = ErrChannelClosed
			return
		}
		err = nil
	}
	if err != nil {
		return
	}

	line = bytes.TrimSpace(text)
	return
}

// Send writes data to Output.
func (tc *Tape) Send(data []byte) (err error) {
	if len(data) == 0 {
		return
	}

	if tc.Output == nil {
		err = ErrChannelClosed
		return
	}

	_, err = tc.Output.Write(data)
	if err != nil {
		return
	}

	index := bytes.LastIndexByte(data, '\n')
	if index < 0 {
		tc.column += len(data)
	} else {
		tc.column = len(data) - index - 1
	}

	return
}
