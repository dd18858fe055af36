package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Split  bool
	Encode bool
	IDs    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Split = boolEnv("LVLX_DEBUG_SPLIT")
	d.Encode = boolEnv("LVLX_DEBUG_ENCODE")
	d.IDs = boolEnv("LVLX_DEBUG_IDS")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Split() bool {
	return d.Split
}
func Encode() bool {
	return d.Encode
}
func IDs() bool {
	return d.IDs
}

func Logf(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, msg, args...)
}
