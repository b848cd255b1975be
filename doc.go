// Package stacksat128 implements STACKSAT-128, a 256-bit sponge hash
// built entirely from 4-bit nibble addition and a 16-entry S-box, so
// that it can be transpiled to a stack machine lacking bitwise XOR
// (such as Bitcoin Script).
//
// The state is 64 nibbles (256 bits), the rate is 32 nibbles (128
// bits), and the permutation runs 16 rounds of
// SubNibbles -> PermuteNibbles -> MixColumns -> AddConstant.
package stacksat128
