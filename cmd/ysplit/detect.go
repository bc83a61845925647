package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/ysplit/transcode"
)

func detect(cfg *DetectConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Detect.Parse(cc, args)
	if err != nil {
		cfg.Detect.Usage(cc, err)
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
	_, err = fmt.Fprintln(cc.Out, tr.Encoding())
	return err
}
