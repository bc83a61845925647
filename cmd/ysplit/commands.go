package main

import (
	"github.com/scott-cotton/cli"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{Z: "auto"}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, []*cli.Opt{
		&cli.Opt{
			Name:        "o",
			Description: "output file (default stdout)",
			Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
		},
		&cli.Opt{
			Name:        "z",
			Description: "input compression: auto, none, gzip, zstd (default auto)",
			Type:        cli.NamedFuncOpt(cfg.zOpt, "(mode)"),
		}}...)

	return cli.NewCommandAt(&cfg.Main, "ysplit").
		WithSynopsis("ysplit [opts] command [opts] [file]").
		WithDescription("ysplit splits YAML streams into per-document byte chunks.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return ysplitMain(cfg, cc, args)
		}).
		WithSubs(
			SplitCommand(cfg),
			DetectCommand(cfg),
			RecodeCommand(cfg))
}

func SplitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SplitConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("split").
		WithAliases("s", "sp").
		WithOpts(opts...).
		WithSynopsis("split [-out dir] [-match expr] [-validate] [-raw] [file]").
		WithDescription("split a YAML stream into one chunk per document").
		WithRun(func(cc *cli.Context, args []string) error {
			return split(cfg, cc, args)
		})
	cfg.Split = cmd
	return cmd
}

func DetectCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DetectConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("detect").
		WithAliases("d").
		WithSynopsis("detect [file]").
		WithDescription("print the detected text encoding of a YAML stream").
		WithRun(func(cc *cli.Context, args []string) error {
			return detect(cfg, cc, args)
		})
	cfg.Detect = cmd
	return cmd
}

func RecodeCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &RecodeConfig{MainConfig: mainCfg}
	cmd := cli.NewCommand("recode").
		WithAliases("r", "re").
		WithSynopsis("recode [file]").
		WithDescription("re-encode a YAML stream to UTF-8 with no leading BOM").
		WithRun(func(cc *cli.Context, args []string) error {
			return recode(cfg, cc, args)
		})
	cfg.Recode = cmd
	return cmd
}
