package utils

import (
	"fmt"
	"log"
	"os"
	"runtime/pprof"

	"github.com/jwaldrip/odin/cli"
)

type ArgsOpt struct {
	Prefix     string
	NumCPU     int
	CfgFn      string
	Cpuprofile string
}

// return global arguments and check if successed
func CheckGlobalArgs(c cli.Command) (opt ArgsOpt, succ bool) {
	opt.Prefix = c.Flag("p").String()
	if opt.Prefix == "" {
		log.Printf("[CheckGlobalArgs] args 'p' not set\n")
		return opt, false
	}
	opt.CfgFn = c.Flag("C").String()
	opt.Cpuprofile = c.Flag("cpuprofile").String()

	var ok bool
	opt.NumCPU, ok = c.Flag("t").Get().(int)
	if !ok {
		log.Printf("[CheckGlobalArgs] args 't': %v set error\n", c.Flag("t").String())
		return opt, false
	}
	if opt.NumCPU < 1 {
		log.Printf("[CheckGlobalArgs] args 't': %v must be at least 1\n", opt.NumCPU)
		return opt, false
	}
	return opt, true
}

// StartCPUProfile writes a CPU profile to fn until the returned stop is called.
// An empty fn disables profiling.
func StartCPUProfile(fn string) (stop func(), err error) {
	if fn == "" {
		return func() {}, nil
	}
	fp, err := os.Create(fn)
	if err != nil {
		return nil, fmt.Errorf("create cpuprofile file %s: %w", fn, err)
	}
	if err := pprof.StartCPUProfile(fp); err != nil {
		fp.Close()
		return nil, fmt.Errorf("start cpuprofile: %w", err)
	}
	return func() {
		pprof.StopCPUProfile()
		fp.Close()
	}, nil
}

// Warner logs the first Max warnings and counts the rest.
type Warner struct {
	Max int
	n   int
}

func (w *Warner) Warnf(format string, a ...interface{}) {
	w.n++
	if w.Max > 0 && w.n > w.Max {
		return
	}
	log.Printf("WARN: "+format, a...)
}

// Count return the number of warnings seen, logged or not
func (w *Warner) Count() int {
	if w == nil {
		return 0
	}
	return w.n
}

// Suppressed is the number of warnings that were counted but not logged.
func (w *Warner) Suppressed() int {
	if w == nil || w.Max <= 0 || w.n <= w.Max {
		return 0
	}
	return w.n - w.Max
}
