package main

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/scott-cotton/cli"
)

var (
	gzipMagic = []byte{0x1F, 0x8B}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
)

// inputReader applies the -z input decompression mode. In auto mode the
// leading bytes are sniffed for gzip or zstd magic and replayed, so
// uncompressed input loses nothing.
func (cfg *MainConfig) inputReader(r io.Reader) (io.Reader, error) {
	switch cfg.Z {
	case "", "auto":
		return sniffCompression(r)
	case "none":
		return r, nil
	case "gzip":
		return gzip.NewReader(r)
	case "zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	default:
		return nil, fmt.Errorf("%w: unknown -z mode %q", cli.ErrUsage, cfg.Z)
	}
}

func sniffCompression(r io.Reader) (io.Reader, error) {
	magic := make([]byte, len(zstdMagic))
	n, err := io.ReadFull(r, magic)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	magic = magic[:n]
	chained := io.MultiReader(bytes.NewReader(magic), r)
	switch {
	case bytes.HasPrefix(magic, gzipMagic):
		theLog.Debug("input compression", "format", "gzip")
		return gzip.NewReader(chained)
	case bytes.HasPrefix(magic, zstdMagic):
		theLog.Debug("input compression", "format", "zstd")
		zr, err := zstd.NewReader(chained)
		if err != nil {
			return nil, err
		}
		return zr.IOReadCloser(), nil
	default:
		return chained, nil
	}
}
