package insn

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/rvtools/rvinsn/pkg/insn"
	"github.com/rvtools/rvinsn/pkg/utils"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	colorHeader = color.New(color.FgWhite, color.Bold)
	colorField  = color.New(color.FgGreen)
	colorValue  = color.New(color.FgYellow)
	colorHex    = color.New(color.FgMagenta)
	colorMatch  = color.New(color.FgCyan, color.Bold)
)

var inspectFormat string

// One decoded field of an inspected instruction word
type fieldReport struct {
	Name   string `yaml:"name"`
	Bits   string `yaml:"bits"`
	Hex    string `yaml:"hex"`
	Value  uint32 `yaml:"value"`
	Signed *int32 `yaml:"signed,omitempty"`
}

type wordReport struct {
	Word   string        `yaml:"word"`
	Addi   bool          `yaml:"addi"`
	Fields []fieldReport `yaml:"fields"`
}

func buildWordReport(word uint32) wordReport {
	report := wordReport{
		Word: utils.FormatUintHex(uint64(word), 8),
		Addi: insn.IsAddi(word),
	}

	for _, field := range insn.ITypeFields() {
		value := field.Extract(word)

		entry := fieldReport{
			Name:  field.Name,
			Bits:  utils.FormatUintBinary(uint64(value), field.Width),
			Hex:   utils.FormatUintHex(uint64(value), (field.Width+3)/4),
			Value: value,
		}

		if field == insn.Imm12 {
			signed := insn.SignExtendImm12(value)
			entry.Signed = &signed
		}

		report.Fields = append(report.Fields, entry)
	}

	return report
}

func wordFrame(word uint32, leftpad int) string {
	return utils.AsciiFrame(utils.Map(insn.ITypeFields(), func(field insn.Field) utils.AsciiFrameField {
		return utils.AsciiFrameField{
			Name:  fmt.Sprintf("%v %v", field.Name, utils.FormatUintBinary(uint64(field.Extract(word)), field.Width)),
			Begin: field.Position,
			Width: field.Width,
		}
	}), insn.WordBits, "bits", leftpad)
}

func printTextReport(word uint32) {
	report := buildWordReport(word)

	fmt.Printf("%v %v\n\n", colorHeader.Sprint("word:"), colorHex.Sprint(report.Word))
	fmt.Println(wordFrame(word, 2))

	for _, entry := range report.Fields {
		line := fmt.Sprintf("  %v = %v (%v, %v", colorField.Sprintf("%-6v", entry.Name), entry.Bits, colorHex.Sprint(entry.Hex), colorValue.Sprint(entry.Value))

		if entry.Signed != nil {
			line += fmt.Sprintf(", signed %v", colorValue.Sprint(*entry.Signed))
		}

		fmt.Println(line + ")")
	}

	fmt.Println()

	if report.Addi {
		fmt.Println(colorMatch.Sprint("matches: addi rd, rs1, imm12"))
	} else {
		fmt.Println("matches: (none recognized)")
	}
}

// inspectCmd represents the inspect command
var inspectCmd = &cobra.Command{
	Use:   "inspect word",
	Short: "Decode the fields of an instruction word",
	Long: `Decodes an instruction word into its I-type fields and prints them along with
an encoding diagram. The word can be given in decimal, hex (0x...) or binary
(0b...) notation.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		word, err := parseWord(args[0])
		if err != nil {
			return err
		}

		slog.Debug("inspecting instruction word", "word", utils.FormatUintHex(uint64(word), 8), "format", inspectFormat)

		if inspectFormat == "yaml" {
			out, err := yaml.Marshal(buildWordReport(word))
			if err != nil {
				return err
			}

			fmt.Print(string(out))
			return nil
		}

		printTextReport(word)
		return nil
	},
}

func init() {
	InsnCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().StringVarP(&inspectFormat, "format", "f", "text", "Output format: text or yaml")
}
