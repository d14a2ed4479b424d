// Package bitvec implements the fixed-width bit vectors shared by the
// arithmetic unit.
//
// A Vector is an ordered sequence of bits, most-significant first. Vectors
// are immutable: every operation returns a new Vector and never modifies
// its receiver or arguments.
package bitvec

import (
	"math/big"
	"strings"
)

// Bit is a single binary digit.
type Bit uint8

const (
	BIT_0 = Bit(0)
	BIT_1 = Bit(1)
)

// Vector is an immutable bit vector, most-significant bit first.
type Vector struct {
	bits []Bit
}

func fromBits(bits []Bit) Vector {
	return Vector{bits: bits}
}

// FromBits returns a vector holding a copy of bits, MSB first.
func FromBits(bits []Bit) Vector {
	return fromBits(append([]Bit(nil), bits...))
}

// Parse a bit string of '0' and '1' characters, MSB first.
func Parse(s string) (v Vector, err error) {
	if len(s) == 0 {
		err = ErrEmptyOperand
		return
	}

	bits := make([]Bit, 0, len(s))
	for n, c := range s {
		switch c {
		case '0':
			bits = append(bits, BIT_0)
		case '1':
			bits = append(bits, BIT_1)
		default:
			err = ErrInvalidCharacter{Operand: s, Index: n, Char: c}
			return
		}
	}

	v = fromBits(bits)
	return
}

// MustParse is Parse, but panics on error.
func MustParse(s string) Vector {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// Zero returns an all-zero vector of the given width.
func Zero(width int) Vector {
	return fromBits(make([]Bit, width))
}

// One returns a vector of the given width with only the LSB set.
func One(width int) Vector {
	bits := make([]Bit, width)
	if width > 0 {
		bits[width-1] = BIT_1
	}
	return fromBits(bits)
}

// FromUint64 returns the low width bits of value.
func FromUint64(value uint64, width int) Vector {
	bits := make([]Bit, width)
	for n := width - 1; n >= 0 && value != 0; n-- {
		bits[n] = Bit(value & 1)
		value >>= 1
	}
	return fromBits(bits)
}

// Width of the vector in bits.
func (v Vector) Width() int {
	return len(v.bits)
}

// Bit returns the bit at index n, counted from the MSB.
func (v Vector) Bit(n int) Bit {
	return v.bits[n]
}

// MSB returns the most significant bit, or 0 for an empty vector.
func (v Vector) MSB() (b Bit) {
	if len(v.bits) > 0 {
		b = v.bits[0]
	}
	return
}

// LSB returns the least significant bit, or 0 for an empty vector.
func (v Vector) LSB() (b Bit) {
	if len(v.bits) > 0 {
		b = v.bits[len(v.bits)-1]
	}
	return
}

// IsZero is true when no bit is set.
func (v Vector) IsZero() bool {
	for _, b := range v.bits {
		if b == BIT_1 {
			return false
		}
	}
	return true
}

// Equal is true when both vectors have the same width and bits.
func (v Vector) Equal(o Vector) bool {
	if len(v.bits) != len(o.bits) {
		return false
	}
	for n, b := range v.bits {
		if o.bits[n] != b {
			return false
		}
	}
	return true
}

// String returns the bit string form, MSB first.
func (v Vector) String() string {
	var sb strings.Builder
	sb.Grow(len(v.bits))
	for _, b := range v.bits {
		sb.WriteByte('0' + byte(b))
	}
	return sb.String()
}

// Uint64 returns the unsigned value, if it fits in 64 bits.
func (v Vector) Uint64() (value uint64, ok bool) {
	if v.Significant().Width() > 64 {
		return
	}
	for _, b := range v.bits {
		value = (value << 1) | uint64(b)
	}
	ok = true
	return
}

// Value returns the unsigned value of the vector.
func (v Vector) Value() *big.Int {
	value := new(big.Int)
	for _, b := range v.bits {
		value.Lsh(value, 1)
		value.SetBit(value, 0, uint(b))
	}
	return value
}

// SignedValue returns the two's complement value of the vector.
func (v Vector) SignedValue() *big.Int {
	value := v.Value()
	if v.MSB() == BIT_1 {
		value.Sub(value, new(big.Int).Lsh(big.NewInt(1), uint(len(v.bits))))
	}
	return value
}

// Invert returns the bitwise complement.
func (v Vector) Invert() Vector {
	bits := make([]Bit, len(v.bits))
	for n, b := range v.bits {
		bits[n] = b ^ BIT_1
	}
	return fromBits(bits)
}

// Truncate returns exactly width bits: the least significant width bits of
// v, zero extended if v is narrower.
func (v Vector) Truncate(width int) Vector {
	if width >= len(v.bits) {
		return v.PadLeft(width)
	}
	return fromBits(append([]Bit(nil), v.bits[len(v.bits)-width:]...))
}

// PadLeft zero extends v to width bits. Wider vectors are returned as is.
func (v Vector) PadLeft(width int) Vector {
	return v.extend(width, BIT_0)
}

// SignExtend extends v to width bits by replicating its MSB.
func (v Vector) SignExtend(width int) Vector {
	return v.extend(width, v.MSB())
}

func (v Vector) extend(width int, fill Bit) Vector {
	pad := width - len(v.bits)
	if pad < 0 {
		pad = 0
	}
	bits := make([]Bit, pad, pad+len(v.bits))
	for n := range bits {
		bits[n] = fill
	}
	return fromBits(append(bits, v.bits...))
}

// Significant strips leading zero bits, keeping at least one bit.
func (v Vector) Significant() Vector {
	n := 0
	for n < len(v.bits)-1 && v.bits[n] == BIT_0 {
		n++
	}
	return fromBits(append([]Bit(nil), v.bits[n:]...))
}

// ShiftLeft shifts v left by one bit at fixed width, filling the LSB with
// in. The bit shifted out of the MSB is returned as lost.
func (v Vector) ShiftLeft(in Bit) (out Vector, lost Bit) {
	if len(v.bits) == 0 {
		return v, in
	}
	lost = v.bits[0]
	bits := make([]Bit, 0, len(v.bits))
	bits = append(bits, v.bits[1:]...)
	out = fromBits(append(bits, in))
	return
}

// ShiftRight shifts v right by one bit at fixed width, filling the MSB with
// in. The bit shifted out of the LSB is returned as lost.
func (v Vector) ShiftRight(in Bit) (out Vector, lost Bit) {
	if len(v.bits) == 0 {
		return v, in
	}
	lost = v.bits[len(v.bits)-1]
	bits := make([]Bit, 0, len(v.bits))
	bits = append(bits, in)
	out = fromBits(append(bits, v.bits[:len(v.bits)-1]...))
	return
}

// Concat joins vectors, the first argument being most significant.
func Concat(vs ...Vector) Vector {
	var width int
	for _, v := range vs {
		width += len(v.bits)
	}
	bits := make([]Bit, 0, width)
	for _, v := range vs {
		bits = append(bits, v.bits...)
	}
	return fromBits(bits)
}

// Normalize left-pads the narrower of a and b with zeros so both have the
// width of the wider one.
func Normalize(a, b Vector) (Vector, Vector) {
	width := max(a.Width(), b.Width())
	return a.PadLeft(width), b.PadLeft(width)
}
