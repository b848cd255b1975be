package stacksat128

// Tables returns copies of the three immutable tables that drive the
// permutation: the S-box, the round-constant sequence, and the
// combined row-rotation+transpose permutation map. Intended for
// stack-machine code generators that need the literal table values
// but must not be able to mutate package state.
func Tables() (sboxOut [16]uint8, rcOut [16]uint8, permOut [64]uint8) {
	return sbox, rc, perm
}

// Rounds returns the fixed number of permutation rounds (16). There
// is no tweakable round count.
func Rounds() int {
	return rounds
}

// Layer is one of the four per-round transformations, taking the
// round index for the layers (AddConstant) that depend on it.
type Layer func(state *[64]uint8, round int)

// Layers returns the four round layers in application order:
// SubNibbles, PermuteNibbles, MixColumns, AddConstant. A correct
// transpiler emits one unrolled opcode sequence per layer, per round,
// for Rounds() rounds, in this order; Layers does not expose any
// internal scratch buffers or intermediate state.
func Layers() [4]Layer {
	return [4]Layer{
		func(state *[64]uint8, _ int) { subNibbles(state) },
		func(state *[64]uint8, _ int) { permuteNibbles(state) },
		func(state *[64]uint8, _ int) { mixColumns(state) },
		addConstant,
	}
}
