package inspect

import (
	"fmt"
	"os"
	"strconv"

	"huffc/pkg"

	"github.com/spf13/cobra"
)

var InspectCmd = &cobra.Command{
	Use:   "inspect [artifact]",
	Short: "View the code table of a HUFFC artifact",
	Long:  "Inspect the frequency table, derived codes and sizes of a HUFFC artifact",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		artifact := args[0]
		quiet, _ := cmd.Flags().GetBool("quiet")

		s, err := pkg.InspectFile(artifact)
		if err != nil {
			fmt.Printf("Error inspecting artifact %s: %s\n", artifact, err)
			os.Exit(1)
		}

		fmt.Printf("Artifact %s:\n", artifact)
		fmt.Printf("\tSymbols: %d (%d distinct)\n\tHeader: %d bytes\n\tPayload: %d bytes (%d bits, %d padding)\n\tRatio: %.3f\n",
			s.TotalSymbols, len(s.Symbols), s.HeaderSize, s.PayloadSize, s.EncodedBits, s.PaddingBits, s.Ratio())
		if quiet {
			return
		}
		for _, sym := range s.Symbols {
			fmt.Printf("%-8s %10d  %s\n", symbolLabel(sym.Symbol), sym.Count, sym.Code)
		}
	},
}

func symbolLabel(b byte) string {
	if strconv.IsPrint(rune(b)) && b < 0x80 {
		return strconv.QuoteRune(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}

func init() {
	InspectCmd.Flags().BoolP("quiet", "Q", false, "Print only the totals")
}
