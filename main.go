package main

import (
	"os"

	compress "huffc/cmd/compress"
	decompress "huffc/cmd/decompress"
	inspect "huffc/cmd/inspect"
	version "huffc/cmd/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "huffc",
	Short: "HUFFC Huffman file compressor",
	Long:  "HUFFC compresses files losslessly with a byte-level Huffman code and restores them exactly.",
}

func main() {
	rootCmd.AddCommand(compress.CompressCmd)
	rootCmd.AddCommand(decompress.DecompressCmd)
	rootCmd.AddCommand(inspect.InspectCmd)
	rootCmd.AddCommand(version.VersionCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
