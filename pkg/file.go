package pkg

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"huffc/pkg/logger"
)

type FileOptions struct {
	Logger logger.Logger
	// MaxDecodedSize of zero means DefaultMaxDecodedSize.
	MaxDecodedSize uint64
}

func (o FileOptions) logger() logger.Logger {
	if o.Logger == nil {
		return logger.Discard()
	}
	return o.Logger
}

// Result reports the work done by a file operation.
type Result struct {
	InputSize  int
	OutputSize int
	Elapsed    time.Duration
}

func readInput(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInputUnreadable, err)
	}
	return data, nil
}

func writeOutput(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, data, 0644)
}

// CompressFile encodes src into dst.
func CompressFile(src, dst string, opts FileOptions) (Result, error) {
	log := opts.logger()
	start := time.Now()

	raw, err := readInput(src)
	if err != nil {
		log.Errorf("compress %s: %v", src, err)
		return Result{}, err
	}

	artifact := Encode(raw)
	if err := writeOutput(dst, artifact); err != nil {
		log.Errorf("write %s: %v", dst, err)
		return Result{}, err
	}

	res := Result{InputSize: len(raw), OutputSize: len(artifact), Elapsed: time.Since(start)}
	log.Infof("compressed %s (%d bytes) into %s (%d bytes)", src, res.InputSize, dst, res.OutputSize)
	return res, nil
}

// DecompressFile decodes src into dst. Nothing is written if decoding fails.
func DecompressFile(src, dst string, opts FileOptions) (Result, error) {
	log := opts.logger()
	start := time.Now()

	artifact, err := readInput(src)
	if err != nil {
		log.Errorf("decompress %s: %v", src, err)
		return Result{}, err
	}

	var decodeOpts []DecodeOption
	if opts.MaxDecodedSize != 0 {
		decodeOpts = append(decodeOpts, WithMaxDecodedSize(opts.MaxDecodedSize))
	}
	raw, err := Decode(artifact, decodeOpts...)
	if err != nil {
		log.Errorf("decompress %s: %v", src, err)
		return Result{}, err
	}

	if err := writeOutput(dst, raw); err != nil {
		log.Errorf("write %s: %v", dst, err)
		return Result{}, err
	}

	res := Result{InputSize: len(artifact), OutputSize: len(raw), Elapsed: time.Since(start)}
	log.Infof("decompressed %s (%d bytes) into %s (%d bytes)", src, res.InputSize, dst, res.OutputSize)
	return res, nil
}

func InspectFile(path string) (*Summary, error) {
	artifact, err := readInput(path)
	if err != nil {
		return nil, err
	}
	return Summarize(artifact)
}

// Extension is appended to compressed file names.
const Extension = ".huf"

// CompressedName is the default output path for compressing src.
func CompressedName(src string) string { return src + Extension }

// DecompressedName is the default output path for decompressing src: the
// name without Extension, or with ".out" appended when src lacks it.
func DecompressedName(src string) string {
	if strings.HasSuffix(src, Extension) && len(src) > len(Extension) {
		return strings.TrimSuffix(src, Extension)
	}
	return src + ".out"
}
