package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/arith/bitvec"
)

func TestFullAdder(t *testing.T) {
	assert := assert.New(t)

	for n := range 8 {
		a := bitvec.Bit(n >> 2 & 1)
		b := bitvec.Bit(n >> 1 & 1)
		cin := bitvec.Bit(n & 1)
		total := int(a) + int(b) + int(cin)

		sum, cout := fullAdder(a, b, cin)
		assert.Equal(bitvec.Bit(total&1), sum, "%d", n)
		assert.Equal(bitvec.Bit(total>>1), cout, "%d", n)
	}
}

func TestAdd(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b string
		sum  string
	}){
		{"0110", "0011", "1001"},
		{"0000", "0000", "0000"},
		{"1111", "0001", "10000"},
		{"1111", "1111", "11110"},
		{"1", "1", "10"},
		{"1", "0110", "0111"},
		{"101", "11", "1000"},
		{"0001", "0", "0001"},
	}

	for _, entry := range table {
		a := bitvec.MustParse(entry.a)
		b := bitvec.MustParse(entry.b)
		sum := Add(a, b)
		assert.Equal(entry.sum, sum.String(), "%v + %v", entry.a, entry.b)
		assert.Equal(entry.a, a.String(), "operand unchanged")
		assert.Equal(entry.b, b.String(), "operand unchanged")
	}
}
