package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Transcode bool
	Scan      bool
	Chunk     bool
}

var d *debug

func init() {
	d = &debug{}
	d.Transcode = boolEnv("YSPLIT_DEBUG_TRANSCODE")
	d.Scan = boolEnv("YSPLIT_DEBUG_SCAN")
	d.Chunk = boolEnv("YSPLIT_DEBUG_CHUNK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Transcode() bool {
	return d.Transcode
}
func Scan() bool {
	return d.Scan
}
func Chunk() bool {
	return d.Chunk
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
