package insn

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Word patterns shared by the roundtrip sweeps below. All-zeros, all-ones and
// a couple of irregular patterns cover both field and non-field bits.
var wordPatterns = []uint32{
	0x00000000,
	0xffffffff,
	0xa5a5a5a5,
	0x5a5a5a5a,
	0x00150293,
	0xdeadbeef,
}

func TestFieldTable(t *testing.T) {
	tests := []struct {
		field    Field
		position int
		width    int
		mask     uint32
	}{
		{Opcode, 0, 7, 0x0000007f},
		{Rd, 7, 5, 0x00000f80},
		{Funct3, 12, 3, 0x00007000},
		{Rs1, 15, 5, 0x000f8000},
		{Rs2, 20, 5, 0x01f00000},
		{Funct7, 25, 7, 0xfe000000},
		{Imm12, 20, 12, 0xfff00000},
	}

	for _, tt := range tests {
		t.Run(tt.field.Name, func(t *testing.T) {
			assert.Equal(t, tt.position, tt.field.Position)
			assert.Equal(t, tt.width, tt.field.Width)
			assert.Equal(t, tt.mask, tt.field.Mask())
			assert.Equal(t, tt.position, tt.field.LeastSignificantBit())
			assert.Equal(t, tt.position+tt.width-1, tt.field.MostSignificantBit())
		})
	}
}

func TestFormatFieldsAreDisjointAndCoverTheWord(t *testing.T) {
	for _, fields := range [][]Field{ITypeFields(), RTypeFields()} {
		var covered uint32

		for _, field := range fields {
			assert.Zero(t, covered&field.Mask(), "field %v overlaps a previous field", field)
			covered |= field.Mask()
		}

		assert.Equal(t, uint32(0xffffffff), covered)
	}
}

func TestUpdateExtractRoundtrip_Imm12(t *testing.T) {
	for _, word := range wordPatterns {
		for value := uint32(0); value < 1<<12; value++ {
			require.Equal(t, value, ExtractImm12(UpdateImm12(word, value)))
		}
	}
}

func TestUpdateExtractRoundtrip_Registers(t *testing.T) {
	for _, word := range wordPatterns {
		for value := uint32(0); value < 1<<5; value++ {
			require.Equal(t, value, ExtractRd(UpdateRd(word, value)))
			require.Equal(t, value, ExtractRs1(UpdateRs1(word, value)))
		}
	}
}

func TestUpdateLeavesOutsideBitsUntouched(t *testing.T) {
	fields := []Field{Imm12, Rd, Rs1, Rs2, Funct3, Funct7, Opcode}

	for _, field := range fields {
		for _, word := range wordPatterns {
			updated := field.Update(word, 0xffffffff)

			require.Equal(t, word&^field.Mask(), updated&^field.Mask(),
				"update of %v corrupted bits outside the field", field)
		}
	}
}

func TestInsertEqualsUpdateOnClearedField(t *testing.T) {
	fields := []Field{Imm12, Rd, Rs1}

	for _, field := range fields {
		for _, word := range wordPatterns {
			cleared := word &^ field.Mask()

			for _, value := range []uint32{0, 1, 0x15, 0x7ff, 0xfff, 0xffffffff} {
				require.Equal(t, field.Update(cleared, value), field.Insert(cleared, value))
			}
		}
	}
}

func TestInsertMergesWithExistingBits(t *testing.T) {
	// 0xfff already fills the imm12 field, inserting on top changes nothing
	word := UpdateImm12(0, 0xfff)

	assert.Equal(t, word, InsertImm12(word, 0x123))

	// on a cleared field the same insert sticks
	assert.Equal(t, uint32(0x123), ExtractImm12(InsertImm12(0, 0x123)))
}

func TestInsertTruncatesOversizedValues(t *testing.T) {
	assert.Equal(t, InsertRd(0, 1), InsertRd(0, 33))
	assert.Equal(t, InsertRs1(0, 2), InsertRs1(0, 34))
	assert.Equal(t, InsertImm12(0, 1), InsertImm12(0, 0x1001))
}

func TestExtractIsTotal(t *testing.T) {
	// extraction never reads bits outside the declared width
	for _, word := range wordPatterns {
		assert.LessOrEqual(t, ExtractImm12(word), uint32(0xfff))
		assert.LessOrEqual(t, ExtractRd(word), uint32(31))
		assert.LessOrEqual(t, ExtractRs1(word), uint32(31))
		assert.LessOrEqual(t, ExtractRs2(word), uint32(31))
		assert.LessOrEqual(t, ExtractOpcode(word), uint32(0x7f))
		assert.LessOrEqual(t, ExtractFunct3(word), uint32(7))
		assert.LessOrEqual(t, ExtractFunct7(word), uint32(0x7f))
	}
}
