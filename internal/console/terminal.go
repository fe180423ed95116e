// Package console runs the form flows over a line-oriented terminal.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BruksfildServices01/escritorio-juridico/internal/domain/office"
	"github.com/BruksfildServices01/escritorio-juridico/internal/form"
)

// CancelWord abandons the current form when typed at any prompt.
const CancelWord = ":q"

// maxLineBytes caps one answer; longer lines are discarded and asked again.
const maxLineBytes = 64 * 1024

// Terminal implements form.Prompter and form.Notifier. An empty answer
// keeps the field's default.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

func (t *Terminal) CollectFields(
	ctx context.Context,
	title string,
	fields []office.Field,
) (map[string]string, error) {

	fmt.Fprintf(t.out, "\n== %s ==  (%s para cancelar)\n", title, CancelWord)

	answers := make(map[string]string, len(fields))
	for _, f := range fields {
		prompt := f.Label
		if f.Default != "" {
			prompt = fmt.Sprintf("%s [%s]", f.Label, f.Default)
		}

		line, err := t.readLine(ctx, prompt)
		if err != nil {
			return nil, err
		}
		if line == "" {
			line = f.Default
		}
		answers[f.Key] = line
	}
	return answers, nil
}

func (t *Terminal) CollectString(ctx context.Context, title, prompt string) (string, error) {
	fmt.Fprintf(t.out, "\n== %s ==\n", title)
	return t.readLine(ctx, prompt)
}

func (t *Terminal) Notify(severity form.Severity, title, message string) {
	fmt.Fprintf(t.out, "\n[%s] %s\n%s\n", strings.ToUpper(severity.String()), title, message)
}

// readLine returns form.ErrCancelled on EOF, on the cancel word or when ctx
// is done. An answer over maxLineBytes is dropped and the prompt repeated.
func (t *Terminal) readLine(ctx context.Context, prompt string) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", form.ErrCancelled
		}

		fmt.Fprintf(t.out, "%s: ", prompt)
		raw, tooLong, err := t.nextLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return "", form.ErrCancelled
			}
			return "", fmt.Errorf("read input: %w", err)
		}
		if tooLong {
			fmt.Fprintf(t.out, "\nresposta muito longa (máximo %d bytes), digite novamente\n", maxLineBytes)
			continue
		}

		line := strings.TrimSpace(raw)
		if line == CancelWord {
			return "", form.ErrCancelled
		}
		return line, nil
	}
}

// nextLine reads up to the next newline. A line longer than maxLineBytes is
// consumed whole and reported as tooLong. io.EOF is returned only when no
// bytes were left.
func (t *Terminal) nextLine() (line string, tooLong bool, err error) {
	var buf []byte
	read := 0
	for {
		chunk, err := t.in.ReadSlice('\n')
		read += len(chunk)
		if read > maxLineBytes {
			tooLong = true
			buf = nil
		} else {
			buf = append(buf, chunk...)
		}

		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case errors.Is(err, io.EOF):
			if read == 0 {
				return "", false, io.EOF
			}
			return string(buf), tooLong, nil
		case err != nil:
			return "", false, err
		}
		return strings.TrimRight(string(buf), "\r\n"), tooLong, nil
	}
}

var (
	_ form.Prompter = (*Terminal)(nil)
	_ form.Notifier = (*Terminal)(nil)
)
