package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/iamasit07/connect4/internal/domain"
	"golang.org/x/text/message"
)

// maxLineLength bounds a single answer; longer lines are read and dropped.
const maxLineLength = 1024

var errLineTooLong = errors.New("input line too long")

type lineResult struct {
	text string
	err  error
}

// Input reads column choices and yes/no answers line by line. Lines are read
// on a background goroutine so a blocked prompt still honours its context.
type Input struct {
	reader  *bufio.Reader
	out     io.Writer
	printer *message.Printer
	columns int
	lines   chan lineResult
	start   sync.Once
}

func NewInput(in io.Reader, out io.Writer, printer *message.Printer) *Input {
	return &Input{
		reader:  bufio.NewReader(in),
		out:     out,
		printer: printer,
		columns: domain.Columns,
		lines:   make(chan lineResult),
	}
}

// ReadColumn prompts name until a label that legal accepts is entered and
// returns it as a 0-based column. It returns io.EOF once input runs out and
// ctx.Err() as soon as ctx is done, even mid-prompt.
func (in *Input) ReadColumn(ctx context.Context, name string, legal func(column int) bool) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}

		fmt.Fprintln(in.out, in.printer.Sprintf(msgPrompt, name))
		line, err := in.readLine(ctx)
		if errors.Is(err, errLineTooLong) {
			fmt.Fprintln(in.out, in.printer.Sprintf(msgOutOfRange, in.columns))
			continue
		}
		if err != nil {
			return -1, err
		}

		label, err := strconv.Atoi(line)
		if err != nil || label < 1 || label > in.columns {
			fmt.Fprintln(in.out, in.printer.Sprintf(msgOutOfRange, in.columns))
			continue
		}

		column := domain.ColumnIndex(label)
		if !legal(column) {
			fmt.Fprintln(in.out, in.printer.Sprintf(msgColumnFull, label))
			continue
		}
		return column, nil
	}
}

// Confirm asks question until the answer is yes or no.
func (in *Input) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		fmt.Fprintln(in.out, question)
		line, err := in.readLine(ctx)
		if err != nil && !errors.Is(err, errLineTooLong) {
			return false, err
		}

		if err == nil {
			switch strings.ToLower(line) {
			case "y", "yes", "s", "si", "sí":
				return true, nil
			case "n", "no":
				return false, nil
			}
		}
		fmt.Fprintln(in.out, in.printer.Sprintf(msgAnswerYesNo))
	}
}

// readLine waits for the next line or for ctx. A line that arrives after ctx
// is done is discarded.
func (in *Input) readLine(ctx context.Context) (string, error) {
	in.start.Do(func() { go in.readLoop() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-in.lines:
		if !ok {
			return "", io.EOF
		}
		if err := ctx.Err(); err != nil {
			return "", err
		}
		return res.text, res.err
	}
}

func (in *Input) readLoop() {
	defer close(in.lines)
	for {
		text, err := in.nextLine()
		if err != nil && !errors.Is(err, errLineTooLong) {
			if !errors.Is(err, io.EOF) {
				in.lines <- lineResult{err: err}
			}
			return
		}
		in.lines <- lineResult{text: text, err: err}
	}
}

func (in *Input) nextLine() (string, error) {
	var line []byte
	tooLong := false
	for {
		chunk, isPrefix, err := in.reader.ReadLine()
		if err != nil {
			return "", err
		}
		if len(line)+len(chunk) > maxLineLength {
			tooLong = true
		}
		if !tooLong {
			line = append(line, chunk...)
		}
		if !isPrefix {
			break
		}
	}
	if tooLong {
		return "", errLineTooLong
	}
	return strings.TrimSpace(string(line)), nil
}
