// Package insn implements encoding helpers for 32-bit RISC-V instruction
// words: extraction, insertion and update of fixed-position operand fields,
// plus a recognizer and constructor for the addi instruction.
//
// All operations are pure functions over uint32 values. Out of range inputs
// are truncated to the field width instead of rejected, matching the
// fixed-width behaviour of the hardware encoding.
package insn

import (
	"fmt"

	"github.com/rvtools/rvinsn/pkg/utils"
)

// Describes one fixed-position operand field within a 32-bit instruction word
type Field struct {
	// Name of the field as used in the ISA manual (rd, rs1, imm12, ...)
	Name string
	// First bit within the instruction used to encode this field
	Position int
	// Total bits used to encode the field. The remaining significant bits
	// of a value are truncated (ignored) during insertion
	Width int
}

// Returns the field mask shifted into instruction position
func (f Field) Mask() uint32 {
	return utils.AllOnes[uint32](f.Width) << f.Position
}

// Same as Position
func (f Field) LeastSignificantBit() int {
	return f.Position
}

// Returns the last bit within an instruction used to encode the field
func (f Field) MostSignificantBit() int {
	return f.LeastSignificantBit() + f.Width - 1
}

// Extracts the field value from an instruction word. The result occupies the
// low Width bits of the returned value, zero extended.
func (f Field) Extract(word uint32) uint32 {
	return utils.CreateBitView(&word).Read(f.Position, f.Width)
}

// Inserts a value into the field by ORing it into the word. The value is
// truncated to the field width first.
//
// Insert does not clear the field range: the caller must know the range is
// currently zero (as it is when building an instruction from an opcode
// template) or accept that the result merges with whatever bits were already
// set. Use Update to overwrite a field of an already assembled instruction.
func (f Field) Insert(word uint32, value uint32) uint32 {
	utils.CreateBitView(&word).Write(value, f.Position, f.Width)
	return word
}

// Updates the field value in an instruction word, clearing the field range
// before inserting. Bits outside the field are left untouched.
func (f Field) Update(word uint32, value uint32) uint32 {
	utils.CreateBitView(&word).Overwrite(value, f.Position, f.Width)
	return word
}

func (f Field) String() string {
	return fmt.Sprintf("%v [%v:%v]", f.Name, f.MostSignificantBit(), f.LeastSignificantBit())
}
