package insn

import (
	"fmt"
	"strings"

	"github.com/rvtools/rvinsn/pkg/utils"
)

// Number of bits in a RISC-V base ISA instruction word
const WordBits = 32

// Contains implementation information about the instruction encoding
type EncodingDescriptor struct {
	// Fields of the I-type instruction format, least significant first
	ITypeFields []Field
	// Fields of the R-type instruction format, least significant first
	RTypeFields []Field
}

// Dumps the full encoding description as one big multiline string
func (d *EncodingDescriptor) Documentation(leftpad int) string {
	leftpadStr := strings.Repeat(" ", leftpad)

	var builder strings.Builder

	builder.WriteString(leftpadStr)
	builder.WriteString(fmt.Sprintf("instruction word length (bits): %v\n\n", WordBits))

	builder.WriteString(leftpadStr)
	builder.WriteString("I-type format (register-immediate):\n\n")
	builder.WriteString(fieldFrame(d.ITypeFields, leftpad+2))
	builder.WriteString("\n")

	builder.WriteString(leftpadStr)
	builder.WriteString("R-type format (register-register):\n\n")
	builder.WriteString(fieldFrame(d.RTypeFields, leftpad+2))
	builder.WriteString("\n")

	builder.WriteString(leftpadStr)
	builder.WriteString("Fields:\n\n")

	for _, field := range d.allFields() {
		builder.WriteString(leftpadStr)
		builder.WriteString(fmt.Sprintf(" - %v, mask %v\n", field, utils.FormatUintHex(uint64(field.Mask()), WordBits/4)))
	}

	builder.WriteString("\n")
	builder.WriteString(leftpadStr)
	builder.WriteString("Recognized instructions:\n\n")
	builder.WriteString(leftpadStr)
	builder.WriteString(fmt.Sprintf(" - addi rd, rs1, imm12: word & %v == %v\n",
		utils.FormatUintHex(uint64(AddiMask), WordBits/4),
		utils.FormatUintHex(uint64(AddiMatch), WordBits/4)))

	return builder.String()
}

// Like Documentation(), but with zero leftpad
func (d *EncodingDescriptor) DocString() string {
	return d.Documentation(0)
}

func (d *EncodingDescriptor) allFields() []Field {
	fields := append([]Field{}, d.RTypeFields...)
	fields = append(fields, Imm12)
	return fields
}

func fieldFrame(fields []Field, leftpad int) string {
	return utils.AsciiFrame(utils.Map(fields, func(field Field) utils.AsciiFrameField {
		return utils.AsciiFrameField{
			Name:  field.Name,
			Begin: field.Position,
			Width: field.Width,
		}
	}), WordBits, "bits", leftpad)
}

// Contains implementation information about the instruction encoding
var Descriptor = EncodingDescriptor{
	ITypeFields: ITypeFields(),
	RTypeFields: RTypeFields(),
}
