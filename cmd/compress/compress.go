package compress

import (
	"fmt"
	"os"

	"huffc/pkg"
	"huffc/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	showTime bool
	verbose  bool
)

var CompressCmd = &cobra.Command{
	Use:   "compress [input] [output]",
	Short: "Compress a file with Huffman coding",
	Long:  "Compress a file into a HUFFC artifact. The output defaults to the input name with " + pkg.Extension + " appended.",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		src := args[0]
		out := pkg.CompressedName(src)
		if len(args) == 2 {
			out = args[1]
		}

		opts := pkg.FileOptions{}
		if verbose {
			opts.Logger = logger.New()
		}

		res, err := pkg.CompressFile(src, out, opts)
		if err != nil {
			fmt.Printf("Error compressing %s: %s\n", src, err)
			os.Exit(1)
		}
		fmt.Printf("Compressed %s into %s\n", src, out)
		if showTime {
			fmt.Printf("Time taken: %s\n", res.Elapsed)
		}
	},
}

func init() {
	CompressCmd.Flags().BoolVarP(&showTime, "time", "t", false, "Print the time taken")
	CompressCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
}
