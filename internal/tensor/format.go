package tensor

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// FormatOption configures Format.
type FormatOption func(*formatOptions)

type formatOptions struct {
	precision int
}

// DefaultPrecision prints floats with the fewest digits that round-trip.
const DefaultPrecision = -1

// WithPrecision prints floating-point elements with p digits after the
// decimal point. Negative p selects the shortest exact representation.
func WithPrecision(p int) FormatOption {
	return func(o *formatOptions) { o.precision = p }
}

// Format writes a debug rendering of t to w.
//
// A vector prints as "{ 1, 2, 3 }". A matrix prints one braced row per line
// inside an outer brace pair:
//
//	{
//	 { 1, 2, 3 }
//	 { 4, 5, 6 }
//	}
//
// Higher ranks print their descriptor.
func Format[T Number](w io.Writer, t Tensorlike[T], opts ...FormatOption) error {
	o := formatOptions{precision: DefaultPrecision}
	for _, opt := range opts {
		opt(&o)
	}

	var b strings.Builder
	writeTensor(&b, t, o)
	_, err := io.WriteString(w, b.String())
	return err
}

func writeTensor[T Number](b *strings.Builder, t Tensorlike[T], o formatOptions) {
	switch t.Order() {
	case 1:
		writeVector(b, t, o)
	case 2:
		b.WriteString("{\n")
		for i := 0; i < t.Rows(); i++ {
			b.WriteString(" ")
			writeVector[T](b, t.Row(i), o)
			b.WriteString("\n")
		}
		b.WriteString("}")
	default:
		fmt.Fprintf(b, "Tensor%v(%s)", t.Extents(), t.slice())
	}
}

func writeVector[T Number](b *strings.Builder, v Tensorlike[T], o formatOptions) {
	b.WriteString("{")
	first := true
	for it := v.Begin(); !it.Done(); it.Next() {
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(formatElem(it.Value(), o))
	}
	b.WriteString(" }")
}

func formatElem[T Number](x T, o formatOptions) string {
	switch v := any(x).(type) {
	case float32:
		return formatFloat(float64(v), 32, o)
	case float64:
		return formatFloat(v, 64, o)
	default:
		return fmt.Sprint(x)
	}
}

func formatFloat(f float64, bits int, o formatOptions) string {
	if o.precision < 0 {
		return strconv.FormatFloat(f, 'g', -1, bits)
	}
	return strconv.FormatFloat(f, 'f', o.precision, bits)
}

func formatString[T Number](t Tensorlike[T]) string {
	var b strings.Builder
	writeTensor(&b, t, formatOptions{precision: DefaultPrecision})
	return b.String()
}
