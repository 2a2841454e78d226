package decompress

import (
	"errors"
	"fmt"
	"os"

	"huffc/pkg"
	"huffc/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	maxSize  uint64
	showTime bool
	verbose  bool
)

var DecompressCmd = &cobra.Command{
	Use:   "decompress [artifact] [output]",
	Short: "Restore a file from a HUFFC artifact",
	Long:  "Decompress a HUFFC artifact. The output defaults to the artifact name without " + pkg.Extension + ", or with .out appended.",
	Args:  cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkMaxSize(maxSize); err != nil {
			fmt.Printf("Error: %s\n", err)
			cmd.Usage()
			os.Exit(2)
		}

		src := args[0]
		out := pkg.DecompressedName(src)
		if len(args) == 2 {
			out = args[1]
		}

		opts := pkg.FileOptions{MaxDecodedSize: maxSize}
		if verbose {
			opts.Logger = logger.New()
		}

		res, err := pkg.DecompressFile(src, out, opts)
		if err != nil {
			fmt.Printf("Error decompressing %s: %s\n", src, err)
			os.Exit(1)
		}
		fmt.Printf("Decompressed %s into %s\n", src, out)
		if showTime {
			fmt.Printf("Time taken: %s\n", res.Elapsed)
		}
	},
}

func checkMaxSize(n uint64) error {
	if n == 0 {
		return errors.New("--max-size must be greater than zero")
	}
	return nil
}

func init() {
	DecompressCmd.Flags().Uint64VarP(&maxSize, "max-size", "m", pkg.DefaultMaxDecodedSize, "Refuse artifacts that decode to more bytes than this")
	DecompressCmd.Flags().BoolVarP(&showTime, "time", "t", false, "Print the time taken")
	DecompressCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log progress to stderr")
}
