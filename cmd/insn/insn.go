package insn

import (
	"errors"
	"strconv"

	"github.com/rvtools/rvinsn/pkg/utils"
	"github.com/spf13/cobra"
)

// InsnCmd represents the insn command
var InsnCmd = &cobra.Command{
	Use:   "insn",
	Short: "Instruction word tools",
}

var ErrInvalidWord = errors.New("invalid instruction word")

// Parses a 32-bit instruction word from a decimal, 0x-prefixed hex or
// 0b-prefixed binary string
func parseWord(text string) (uint32, error) {
	word, err := strconv.ParseUint(text, 0, 32)

	if err != nil {
		return 0, utils.MakeError(ErrInvalidWord, "'%v'", text)
	}

	return uint32(word), nil
}
