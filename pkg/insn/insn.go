package insn

// Per-field wrappers over the field table. Extract returns the field value
// zero extended, Insert ORs a width-truncated value into the word (the field
// range must already be zero for the result to be meaningful), Update clears
// the field range first and is safe on any word.

func ExtractImm12(word uint32) uint32 {
	return Imm12.Extract(word)
}

func InsertImm12(word uint32, value uint32) uint32 {
	return Imm12.Insert(word, value)
}

func UpdateImm12(word uint32, value uint32) uint32 {
	return Imm12.Update(word, value)
}

func ExtractRd(word uint32) uint32 {
	return Rd.Extract(word)
}

func InsertRd(word uint32, value uint32) uint32 {
	return Rd.Insert(word, value)
}

func UpdateRd(word uint32, value uint32) uint32 {
	return Rd.Update(word, value)
}

func ExtractRs1(word uint32) uint32 {
	return Rs1.Extract(word)
}

func InsertRs1(word uint32, value uint32) uint32 {
	return Rs1.Insert(word, value)
}

func UpdateRs1(word uint32, value uint32) uint32 {
	return Rs1.Update(word, value)
}

func ExtractOpcode(word uint32) uint32 {
	return Opcode.Extract(word)
}

func ExtractFunct3(word uint32) uint32 {
	return Funct3.Extract(word)
}

func ExtractRs2(word uint32) uint32 {
	return Rs2.Extract(word)
}

func ExtractFunct7(word uint32) uint32 {
	return Funct7.Extract(word)
}
