package buffer

import (
	"bytes"
	"io"

	"github.com/arthur-debert/bsconf/pkg/errors"
)

// DefaultCapacity is the working buffer size used when the project does
// not configure one.
const DefaultCapacity = 0x10000

// FileBuffer holds one template in a fixed-capacity region. The logical
// size is tracked separately from the capacity and never exceeds it.
type FileBuffer struct {
	data []byte
	size int
}

// New allocates a buffer with the given fixed capacity. A non-positive
// capacity selects DefaultCapacity.
func New(capacity int) *FileBuffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &FileBuffer{data: make([]byte, capacity)}
}

// Cap returns the fixed capacity.
func (b *FileBuffer) Cap() int { return len(b.data) }

// Size returns the logical length of the live region.
func (b *FileBuffer) Size() int { return b.size }

// Bytes returns the live region. The slice aliases the buffer and is only
// valid until the next mutation.
func (b *FileBuffer) Bytes() []byte { return b.data[:b.size] }

func (b *FileBuffer) String() string { return string(b.Bytes()) }

// Reset empties the buffer and zeroes its storage.
func (b *FileBuffer) Reset() {
	clear(b.data)
	b.size = 0
}

// Load replaces the buffer contents with everything r yields. Input
// larger than the capacity is rejected rather than truncated.
func (b *FileBuffer) Load(r io.Reader) error {
	b.Reset()
	n, err := io.ReadFull(r, b.data)
	switch err {
	case nil:
		var probe [1]byte
		if m, _ := r.Read(probe[:]); m > 0 {
			b.Reset()
			return errors.Newf(errors.ErrTemplateTooLarge, "template exceeds buffer capacity of %d bytes", len(b.data)).
				WithDetail("capacity", len(b.data))
		}
	case io.EOF, io.ErrUnexpectedEOF:
	default:
		b.Reset()
		return errors.Wrap(err, errors.ErrFileRead, "fread")
	}
	b.size = n
	return nil
}

// SetString loads s into the buffer.
func (b *FileBuffer) SetString(s string) error {
	return b.Load(bytes.NewReader([]byte(s)))
}

// WriteTo writes the live region to w.
func (b *FileBuffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// Substitute replaces every literal occurrence of match in the live
// region with replacement and returns the number of replacements.
//
// Scanning resumes at the first byte after each inserted replacement, so
// replacement text is never rescanned for match. When a replacement would
// push the size past the capacity the call fails with ErrBufferOverflow;
// replacements made before that point remain in the buffer.
func (b *FileBuffer) Substitute(match, replacement string) (int, error) {
	if match == "" {
		return 0, nil
	}
	m := []byte(match)
	delta := len(replacement) - len(m)

	count := 0
	for pos := 0; pos < b.size; {
		if !bytes.HasPrefix(b.data[pos:b.size], m) {
			pos++
			continue
		}
		if b.size+delta > len(b.data) {
			return count, errors.Newf(errors.ErrBufferOverflow, "buffer overflow substituting %q", match).
				WithDetail("size", b.size).
				WithDetail("delta", delta).
				WithDetail("capacity", len(b.data))
		}
		b.shiftTail(pos+len(m), pos+len(replacement))
		copy(b.data[pos:], replacement)
		b.size += delta
		pos += len(replacement)
		count++
	}
	return count, nil
}

// shiftTail moves data[from:size] so it starts at to. copy has memmove
// semantics: a right shift copies from the end toward the start and a
// left shift from the start toward the end, so the overlap is safe.
func (b *FileBuffer) shiftTail(from, to int) {
	if from == to {
		return
	}
	copy(b.data[to:], b.data[from:b.size])
}

// Pair is one literal substitution.
type Pair struct {
	Match       string
	Replacement string
}

// Apply runs Substitute for each pair in order and returns the total
// number of replacements. It stops at the first error.
func (b *FileBuffer) Apply(pairs []Pair) (int, error) {
	total := 0
	for _, p := range pairs {
		n, err := b.Substitute(p.Match, p.Replacement)
		total += n
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// MakeToken wraps name in the @ delimiters used by templates.
func MakeToken(name string) string {
	return "@" + name + "@"
}
