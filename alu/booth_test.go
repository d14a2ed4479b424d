package alu

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/arith/bitvec"
)

func TestBoothMultiply(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		m, q    string
		width   int
		product string
	}){
		{"0011", "1101", 4, "11110111"},
		{"1000", "1000", 4, "01000000"},
		{"0111", "0111", 4, "00110001"},
		{"1111", "1111", 4, "00000001"},
		{"0111", "1000", 4, "11001000"},
		{"0000", "1010", 4, "00000000"},
		{"11", "10", 4, "00000110"},
		{"11111101", "00000101", 8, "1111111111110001"},
		{"1", "1", 1, "01"},
		{"0", "1", 1, "00"},
	}

	for _, entry := range table {
		res, err := BoothMultiply(bitvec.MustParse(entry.m), bitvec.MustParse(entry.q), entry.width)
		assert.NoError(err)
		assert.Equal(entry.product, res.Product.String(), "%v * %v", entry.m, entry.q)
		assert.Equal(entry.width, res.Iterations)
		assert.Equal(entry.width+1, len(res.Trace))
	}
}

func TestBoothMultiply_Trace(t *testing.T) {
	assert := assert.New(t)

	res, err := BoothMultiply(bitvec.MustParse("0011"), bitvec.MustParse("1101"), BOOTH_DEFAULT_WIDTH)
	assert.NoError(err)

	expect := []string{
		"step 0: init A=0000 Q=1101 Q-1=0 M=0011",
		"step 1: sub A=1110 Q=1110 Q-1=1 M=0011",
		"step 2: add A=0000 Q=1111 Q-1=0 M=0011",
		"step 3: sub A=1110 Q=1111 Q-1=1 M=0011",
		"step 4: none A=1111 Q=0111 Q-1=1 M=0011",
	}

	var trace []string
	for _, step := range res.Trace {
		trace = append(trace, step.String())
	}
	assert.Equal(expect, trace)

	actions := []Action{ACTION_INIT, ACTION_SUB, ACTION_ADD, ACTION_SUB, ACTION_NONE}
	for n, step := range res.Trace {
		assert.Equal(n, step.Index)
		assert.Equal(actions[n], step.Action)
	}
}

func TestBoothMultiply_Exhaustive(t *testing.T) {
	assert := assert.New(t)

	for width := 1; width <= 5; width++ {
		for mv := range uint64(1) << width {
			for qv := range uint64(1) << width {
				m := bitvec.FromUint64(mv, width)
				q := bitvec.FromUint64(qv, width)

				res, err := BoothMultiply(m, q, width)
				assert.NoError(err)

				expect := new(big.Int).Mul(m.SignedValue(), q.SignedValue())
				assert.Equal(expect.String(), res.Product.SignedValue().String(), "%v * %v", m, q)
				assert.Equal(2*width, res.Product.Width())
				assert.Equal(width, res.Iterations)
			}
		}
	}
}

func TestBoothMultiply_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := BoothMultiply(bitvec.MustParse("10011"), bitvec.MustParse("0001"), 4)
	assert.ErrorIs(err, ErrWidthMismatch{})

	var mismatch ErrWidthMismatch
	if assert.True(errors.As(err, &mismatch)) {
		assert.Equal("10011", mismatch.Operand)
		assert.Equal(4, mismatch.Width)
	}

	_, err = BoothMultiply(bitvec.MustParse("0001"), bitvec.MustParse("000011"), 4)
	assert.ErrorIs(err, ErrWidthMismatch{})

	_, err = BoothMultiply(bitvec.MustParse("1"), bitvec.MustParse("1"), 0)
	assert.ErrorIs(err, ErrWidthInvalid)
}

func TestAction_String(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("init", ACTION_INIT.String())
	assert.Equal("none", ACTION_NONE.String())
	assert.Equal("add", ACTION_ADD.String())
	assert.Equal("sub", ACTION_SUB.String())
	assert.Equal("Action(9)", Action(9).String())
}
