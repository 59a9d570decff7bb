package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"go.uber.org/zap"

	apperror "console-playground/internal/error"
)

type line struct {
	text string
	err  error
}

// Console is a line-oriented terminal. A single reader goroutine feeds lines
// to ReadLine so a cancelled context does not wait on a blocked read.
type Console struct {
	out    io.Writer
	lines  chan line
	done   chan struct{}
	once   sync.Once
	err    error
	logger *zap.Logger
}

// ------------------------------------------------------------------------------------------------------
func New(in io.Reader, out io.Writer, logger *zap.Logger) *Console {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Console{
		out:    out,
		lines:  make(chan line),
		done:   make(chan struct{}),
		logger: logger,
	}
	go c.readLoop(bufio.NewReader(in))
	return c
}

// ------------------------------------------------------------------------------------------------------
func (c *Console) readLoop(r *bufio.Reader) {
	defer close(c.lines)

	for {
		text, err := r.ReadString('\n')
		// A final line without a newline still counts.
		if text != "" {
			text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			if !c.send(line{text: text}) {
				return
			}
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, io.EOF) {
			c.send(line{err: apperror.NewInputError("failed to read input", err)})
		}
		return
	}
}

func (c *Console) send(l line) bool {
	select {
	case c.lines <- l:
		return true
	case <-c.done:
		return false
	}
}

// ------------------------------------------------------------------------------------------------------
// ReadLine writes prompt without a newline and waits for the next input line.
// End of input returns apperror.ErrInputClosed.
func (c *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	c.Print(prompt)
	if c.err != nil {
		return "", c.err
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case l, ok := <-c.lines:
		if !ok {
			c.logger.Debug("Input closed")
			return "", apperror.NewInputError("input closed", apperror.ErrInputClosed)
		}
		return l.text, l.err
	}
}

// ------------------------------------------------------------------------------------------------------
// Print and Println keep the first write error; later writes are skipped and
// Err reports it.
func (c *Console) Print(s string) {
	if c.err != nil {
		return
	}
	if _, err := io.WriteString(c.out, s); err != nil {
		c.err = apperror.NewInternalError("failed to write output", err)
		c.logger.Error("Write failed", zap.Error(err))
	}
}

// ------------------------------------------------------------------------------------------------------
func (c *Console) Println(s string) {
	c.Print(s + "\n")
}

// ------------------------------------------------------------------------------------------------------
func (c *Console) Printf(format string, args ...any) {
	c.Print(fmt.Sprintf(format, args...))
}

// ------------------------------------------------------------------------------------------------------
func (c *Console) Err() error {
	return c.err
}

// ------------------------------------------------------------------------------------------------------
// Close stops the reader goroutine once it next has a line to hand over.
func (c *Console) Close() {
	c.once.Do(func() { close(c.done) })
}

// Finished reports whether err ends a session normally: the input was closed
// or the context was cancelled.
func Finished(err error) bool {
	return errors.Is(err, apperror.ErrInputClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}
