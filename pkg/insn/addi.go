package insn

import "github.com/rvtools/rvinsn/pkg/utils"

const (
	// addi is I-type: opcode OP-IMM with funct3 zero. AddiMatch doubles as
	// the opcode template for construction since all operand fields are zero.
	AddiMatch uint32 = 0x00000013
	// AddiMask covers the opcode and funct3 fields, the bits that identify
	// the instruction regardless of operand values
	AddiMask uint32 = 0x0000707f
)

// Reports whether a word encodes the register-immediate add instruction
func IsAddi(word uint32) bool {
	return word&AddiMask == AddiMatch
}

// Assembles an addi instruction from its operands. Operand values wider than
// their fields (5 bits for rd and rs1, 12 for imm12) are silently truncated.
// To encode a negative immediate pass its 12-bit two's complement pattern
// (0xfff encodes -1).
func MakeAddi(rd uint32, rs1 uint32, imm12 uint32) uint32 {
	word := AddiMatch
	word = Rd.Insert(word, rd)
	word = Rs1.Insert(word, rs1)
	word = Imm12.Insert(word, imm12)
	return word
}

// Interprets a 12-bit immediate pattern as a two's complement signed value
func SignExtendImm12(value uint32) int32 {
	value &= utils.AllOnes[uint32](Imm12.Width)

	if value&(1<<(Imm12.Width-1)) != 0 {
		value |= ^utils.AllOnes[uint32](Imm12.Width)
	}

	return int32(value)
}
