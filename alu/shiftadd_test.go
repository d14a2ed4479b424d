package alu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/arith/bitvec"
)

func TestShiftAddMultiply(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		m, q       string
		product    string
		steps      int
		iterations int
	}){
		{"0011", "0101", "01111", 2, 3},
		{"0000", "0101", "0000", 2, 3},
		{"0101", "0000", "0000", 0, 0},
		{"1111", "1111", "11100001", 4, 4},
		{"1", "1", "01", 1, 1},
		{"110", "10", "01100", 1, 2},
		{"0001", "1000", "01000", 1, 4},
	}

	for _, entry := range table {
		res := ShiftAddMultiply(bitvec.MustParse(entry.m), bitvec.MustParse(entry.q))
		assert.Equal(entry.product, res.Product.String(), "%v * %v", entry.m, entry.q)
		assert.Equal(entry.steps, len(res.Trace), "%v * %v", entry.m, entry.q)
		assert.Equal(entry.iterations, res.Iterations, "%v * %v", entry.m, entry.q)
	}
}

func TestShiftAddMultiply_Trace(t *testing.T) {
	assert := assert.New(t)

	res := ShiftAddMultiply(bitvec.MustParse("0011"), bitvec.MustParse("0101"))
	if !assert.Equal(2, len(res.Trace)) {
		return
	}

	first := res.Trace[0]
	assert.Equal(0, first.Index)
	assert.Equal(ACTION_ADD, first.Action)
	product, ok := first.Register(REG_PRODUCT)
	assert.True(ok)
	assert.Equal("00011", product.String())
	assert.Equal("step 0: add P=00011 M=00011 Q=101", first.String())

	last := res.Trace[1]
	assert.Equal(2, last.Index)
	product, _ = last.Register(REG_PRODUCT)
	assert.Equal("01111", product.String())
	mcand, _ := last.Register(REG_M)
	assert.Equal("01100", mcand.String())
	mplier, _ := last.Register(REG_Q)
	assert.Equal("001", mplier.String())

	_, ok = last.Register(REG_A)
	assert.False(ok)
}

func TestShiftAddMultiply_Deterministic(t *testing.T) {
	assert := assert.New(t)

	m := bitvec.MustParse("1011")
	q := bitvec.MustParse("0111")

	first := ShiftAddMultiply(m, q)
	second := ShiftAddMultiply(m, q)
	assert.Equal(first.Product.String(), second.Product.String())
	assert.Equal(len(first.Trace), len(second.Trace))
	for n := range first.Trace {
		assert.Equal(first.Trace[n].String(), second.Trace[n].String())
	}
}
