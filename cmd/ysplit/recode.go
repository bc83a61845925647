package main

import (
	"io"

	"github.com/scott-cotton/cli"

	"github.com/signadot/ysplit/transcode"
)

func recode(cfg *RecodeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Recode.Parse(cc, args)
	if err != nil {
		cfg.Recode.Usage(cc, err)
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
	pw := newPipeWriter(cc.Out)
	if _, err := io.Copy(pw, tr); err != nil && err != errPipeClosed {
		return err
	}
	return nil
}
