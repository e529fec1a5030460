package insn

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/spf13/cobra"
)

// Plain text rendition of a decoded word for the explorer view
func describeWord(text string) string {
	text = strings.TrimSpace(text)

	if text == "" {
		return "enter an instruction word (decimal, 0x hex or 0b binary)"
	}

	word, err := parseWord(text)
	if err != nil {
		return err.Error()
	}

	report := buildWordReport(word)

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("word: %v\n\n", report.Word))
	builder.WriteString(wordFrame(word, 0))
	builder.WriteString("\n")

	for _, entry := range report.Fields {
		builder.WriteString(fmt.Sprintf("%-6v = %v (%v, %v", entry.Name, entry.Bits, entry.Hex, entry.Value))

		if entry.Signed != nil {
			builder.WriteString(fmt.Sprintf(", signed %v", *entry.Signed))
		}

		builder.WriteString(")\n")
	}

	builder.WriteString("\n")

	if report.Addi {
		builder.WriteString("matches: addi rd, rs1, imm12\n")
	} else {
		builder.WriteString("matches: (none recognized)\n")
	}

	return builder.String()
}

// exploreCmd represents the explore command
var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactive instruction word explorer",
	Long: `Opens a terminal view with an input field for an instruction word and a live
field breakdown that updates as you type. Press Escape to quit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := tview.NewApplication()

		output := tview.NewTextView()
		output.SetBorder(true)
		output.SetText(describeWord(""))

		input := tview.NewInputField().
			SetLabel(" word: ").
			SetFieldWidth(20)
		input.SetChangedFunc(func(text string) {
			output.SetText(describeWord(text))
		})
		input.SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEscape {
				app.Stop()
			}
		})

		layout := tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(input, 1, 0, true).
			AddItem(output, 0, 1, false)

		return app.SetRoot(layout, true).Run()
	},
}

func init() {
	InsnCmd.AddCommand(exploreCmd)
}
