package insn

// Operand and encoding fields of the RV32I base instruction formats
var (
	Opcode = Field{Name: "opcode", Position: 0, Width: 7}
	Rd     = Field{Name: "rd", Position: 7, Width: 5}
	Funct3 = Field{Name: "funct3", Position: 12, Width: 3}
	Rs1    = Field{Name: "rs1", Position: 15, Width: 5}
	Rs2    = Field{Name: "rs2", Position: 20, Width: 5}
	Funct7 = Field{Name: "funct7", Position: 25, Width: 7}
	Imm12  = Field{Name: "imm12", Position: 20, Width: 12}
)

// Returns the fields of the I-type (register-immediate) instruction format,
// ordered from least significant to most significant
func ITypeFields() []Field {
	return []Field{Opcode, Rd, Funct3, Rs1, Imm12}
}

// Returns the fields of the R-type (register-register) instruction format,
// ordered from least significant to most significant
func RTypeFields() []Field {
	return []Field{Opcode, Rd, Funct3, Rs1, Rs2, Funct7}
}
