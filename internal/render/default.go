package render

import (
	"image/color"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// Width used when the output is not a terminal
const defaultWidth = 80

// DefaultRenderer buffers lines and writes them out on Flush. Colour escapes
// are only emitted when writing to a terminal.
type DefaultRenderer struct {
	buffer strings.Builder
	out    io.Writer
	width  int
	color  bool
}

func (r *DefaultRenderer) Init(w io.Writer) {
	r.out = w
	r.width = defaultWidth
	r.color = false
	r.buffer.Reset()

	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return
	}
	r.color = true
	if columns, _, err := term.GetSize(int(f.Fd())); nil == err && columns > 0 {
		r.width = columns
	}
}

func (r *DefaultRenderer) Width() int {
	return r.width
}

func (r *DefaultRenderer) Fill(message string) {
	r.buffer.WriteString(message)
	r.buffer.WriteString("\n")
}

func (r *DefaultRenderer) FillColor(c color.RGBA, message string) {
	r.writeColor(c, message)
	r.buffer.WriteString("\n")
}

func (r *DefaultRenderer) writeColor(c color.RGBA, message string) {
	if !r.color {
		r.buffer.WriteString(message)
		return
	}
	r.buffer.WriteString("\033[38;2;")
	r.buffer.WriteString(strconv.FormatInt(int64(c.R), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.G), 10))
	r.buffer.WriteString(";")
	r.buffer.WriteString(strconv.FormatInt(int64(c.B), 10))
	r.buffer.WriteString("m")
	r.buffer.WriteString(message)
	r.buffer.WriteString("\033[0m")
}

// Bar writes label, a bar scaled so that max fills the remaining width, and value
func (r *DefaultRenderer) Bar(label string, value, max int, c color.RGBA, symbol string) {
	count := strconv.Itoa(value)
	room := r.width - utf8.RuneCountInString(label) - len(count) - 2
	if room < 1 {
		room = 1
	}
	length := 0
	if max > 0 && value > 0 {
		length = value * room / max
		if length == 0 {
			length = 1
		}
		if length > room {
			length = room
		}
	}

	r.buffer.WriteString(label)
	r.buffer.WriteString(" ")
	r.writeColor(c, strings.Repeat(symbol, length))
	r.buffer.WriteString(" ")
	r.buffer.WriteString(count)
	r.buffer.WriteString("\n")
}

func (r *DefaultRenderer) Flush() error {
	_, err := io.WriteString(r.out, r.buffer.String())
	r.buffer.Reset()
	return err
}
