package main

import (
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Color bool `cli:"name=color desc='colorize banner output'"`
	V     bool `cli:"name=v desc='verbose logging to stderr'"`

	Z string

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) zOpt(_ *cli.Context, a string) (any, error) {
	switch a {
	case "auto", "none", "gzip", "zstd":
		cfg.Z = a
		return a, nil
	default:
		return nil, fmt.Errorf("%w: unknown -z mode %q", cli.ErrUsage, a)
	}
}

// colorize decides whether banner output to w should be colored: true
// with -color, false when -color was explicitly set false, otherwise
// true iff w is a terminal.
func (cfg *MainConfig) colorize(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	for _, opt := range cfg.Main.Opts {
		if opt.Name != "color" {
			continue
		}
		if opt.Value != nil {
			return false
		}
		break
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

type SplitConfig struct {
	*MainConfig

	OutDir   string `cli:"name=out desc='write each document to DIR/doc-NNNN.yaml instead of banners'"`
	Match    string `cli:"name=match desc='keep only documents where this expression is true (env: index, size, text)'"`
	Validate bool   `cli:"name=validate desc='parse each kept document as YAML and fail on the first invalid one'"`
	Raw      bool   `cli:"name=raw desc='emit document bytes back to back with no banners'"`

	Split *cli.Command
}

type DetectConfig struct {
	*MainConfig

	Detect *cli.Command
}

type RecodeConfig struct {
	*MainConfig

	Recode *cli.Command
}
