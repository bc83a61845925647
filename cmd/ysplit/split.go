package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/expr-lang/expr"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/scott-cotton/cli"

	"github.com/signadot/ysplit/chunk"
	"github.com/signadot/ysplit/transcode"
)

func split(cfg *SplitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Split.Parse(cc, args)
	if err != nil {
		cfg.Split.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	in, closeIn, err := openInput(cc, args)
	if err != nil {
		return err
	}
	defer closeIn()
	zin, err := cfg.MainConfig.inputReader(in)
	if err != nil {
		return err
	}
	tr, err := transcode.NewReader(zin)
	if err != nil {
		return err
	}
	theLog.Debug("input encoding", "encoding", tr.Encoding())
	ch := chunk.New(tr)
	defer ch.Close()

	emit, err := cfg.emitter(cc.Out)
	if err != nil {
		return err
	}
	index := 0
	for {
		doc, err := ch.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		index++
		keep, err := cfg.keep(index, doc)
		if err != nil {
			return err
		}
		if !keep {
			theLog.Debug("document filtered out", "index", index, "size", len(doc))
			continue
		}
		if cfg.Validate {
			var v any
			if err := yaml.Unmarshal(doc, &v); err != nil {
				return fmt.Errorf("document %d: %w", index, err)
			}
		}
		if err := emit(index, doc); err != nil {
			if err == errPipeClosed {
				return nil
			}
			return err
		}
	}
}

// keep applies the -match expression, if any. The expression sees the
// 1-based document index, the document's byte size, and its text.
func (cfg *SplitConfig) keep(index int, doc []byte) (bool, error) {
	if cfg.Match == "" {
		return true, nil
	}
	env := map[string]any{
		"index": index,
		"size":  len(doc),
		"text":  string(doc),
	}
	out, err := expr.Eval(cfg.Match, env)
	if err != nil {
		return false, fmt.Errorf("match %q: %w", cfg.Match, err)
	}
	keep, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("match %q: expression is not boolean", cfg.Match)
	}
	return keep, nil
}

// emitter builds the per-document output function: doc-NNNN.yaml files
// under -out, raw concatenated bytes under -raw, banner lines otherwise.
func (cfg *SplitConfig) emitter(w io.Writer) (func(int, []byte) error, error) {
	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
			return nil, err
		}
		return func(index int, doc []byte) error {
			name := filepath.Join(cfg.OutDir, fmt.Sprintf("doc-%04d.yaml", index))
			return os.WriteFile(name, doc, 0644)
		}, nil
	}
	pw := newPipeWriter(w)
	if cfg.Raw {
		return func(_ int, doc []byte) error {
			_, err := pw.Write(doc)
			return err
		}, nil
	}
	start, end := banners(cfg.MainConfig.colorize(w))
	return func(_ int, doc []byte) error {
		_, err := fmt.Fprintf(pw, "%s|%s|%s\n",
			start(">>> START CHUNK (%d bytes) >>>", len(doc)),
			doc,
			end("<<< END CHUNK <<<"))
		return err
	}, nil
}

func banners(colorize bool) (start, end func(string, ...any) string) {
	if !colorize {
		return fmt.Sprintf, fmt.Sprintf
	}
	return color.RGB(0, 196, 96).SprintfFunc(), color.CyanString
}
