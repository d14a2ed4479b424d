// Package alu implements the arithmetic core of a simple CPU at the bit
// level.
//
// The Adder is a ripple-carry chain of full adders whose result grows by
// one bit on carry out. The Subtractor adds the two's complement of its
// second operand and wraps to the operand width. Two multipliers are
// provided: an unsigned shift-and-add multiplier that loops until the
// multiplier is exhausted, and a signed Booth multiplier that runs a fixed
// number of iterations over an (A, Q, Q-1) shift register.
//
// Every operation is a pure function of its inputs. Multipliers return an
// ordered trace of Step records describing their intermediate registers.
package alu
