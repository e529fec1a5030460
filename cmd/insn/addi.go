package insn

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/rvtools/rvinsn/pkg/insn"
	"github.com/rvtools/rvinsn/pkg/utils"
	"github.com/spf13/cobra"
)

var ErrInvalidOperand = errors.New("invalid operand")

func parseRegister(name string, text string) (uint32, error) {
	value, err := strconv.ParseUint(text, 0, 32)

	if err != nil {
		return 0, utils.MakeError(ErrInvalidOperand, "%v '%v'", name, text)
	}

	return uint32(value), nil
}

func parseImmediate(text string) (uint32, error) {
	// immediates may be negative, the 12-bit two's complement pattern is encoded
	value, err := strconv.ParseInt(text, 0, 32)

	if err != nil {
		return 0, utils.MakeError(ErrInvalidOperand, "imm12 '%v'", text)
	}

	return uint32(value), nil
}

// addiCmd represents the addi command
var addiCmd = &cobra.Command{
	Use:   "addi rd rs1 imm12",
	Short: "Assemble an addi instruction",
	Long: `Assembles a register-immediate add instruction from its operands and prints
the resulting word. Operands wider than their encoding fields (5 bits for the
register indices, 12 bits for the immediate) are silently truncated, the same
way the hardware encoding discards them.`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		rd, err := parseRegister("rd", args[0])
		if err != nil {
			return err
		}

		rs1, err := parseRegister("rs1", args[1])
		if err != nil {
			return err
		}

		imm12, err := parseImmediate(args[2])
		if err != nil {
			return err
		}

		word := insn.MakeAddi(rd, rs1, imm12)

		slog.Debug("assembled addi", "rd", rd, "rs1", rs1, "imm12", imm12)

		fmt.Println(utils.FormatUintHex(uint64(word), 8))
		return nil
	},
}

func init() {
	InsnCmd.AddCommand(addiCmd)
}
