package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jwaldrip/odin/cli"

	"github.com/mudesheng/repeatpath/config"
	"github.com/mudesheng/repeatpath/gaf"
	"github.com/mudesheng/repeatpath/gfa"
	"github.com/mudesheng/repeatpath/recomb"
	"github.com/mudesheng/repeatpath/repeat"
	"github.com/mudesheng/repeatpath/report"
	"github.com/mudesheng/repeatpath/utils"
)

type PathsOptions struct {
	utils.ArgsOpt
	GFA string
	GAF string
	Cfg config.Config
}

func checkPathsArgs(c cli.Command) (opt PathsOptions, suc bool) {
	opt.GFA = c.Flag("GFA").String()
	if opt.GFA == "" {
		log.Printf("[checkPathsArgs] argument 'GFA' not set\n")
		return opt, false
	}
	opt.GAF = c.Flag("GAF").String()
	if opt.GAF == "" {
		log.Printf("[checkPathsArgs] argument 'GAF' not set\n")
		return opt, false
	}
	return opt, true
}

func Paths(c cli.Command) {
	gOpt, suc := utils.CheckGlobalArgs(c.Parent())
	if !suc {
		log.Fatalf("[Paths] check global Arguments error, opt: %v\n", gOpt)
	}
	opt, suc := checkPathsArgs(c)
	if !suc {
		log.Fatalf("[Paths] check Arguments error, opt: %v\n", opt)
	}
	opt.ArgsOpt = gOpt
	opt.Cfg, suc = loadConfig(c, gOpt)
	if !suc {
		log.Fatalf("[Paths] load configure error, C: %v\n", gOpt.CfgFn)
	}
	if boolFlag(c, "Progress") {
		opt.Cfg.Progress = true
	}
	log.Printf("[Paths] opt: %+v\n", opt)

	stop, err := utils.StartCPUProfile(opt.Cpuprofile)
	if err != nil {
		log.Fatalf("[Paths] %v\n", err)
	}
	defer stop()

	if err := runPaths(opt, os.Stdout); err != nil {
		log.Fatalf("[Paths] %v\n", err)
	}
}

// runPaths detects repeats in the graph, counts the 3-step alignment paths
// through them and prints the recombination report to w.
func runPaths(opt PathsOptions, w io.Writer) error {
	g, gst, err := gfa.LoadGFA(opt.GFA, opt.NumCPU)
	if err != nil {
		return err
	}
	logGraph(opt.GFA, g, gst)

	cands := repeat.Detect(g, opt.Cfg.RepeatOptions())
	log.Printf("[runPaths] found %d repeat nodes\n", len(cands))

	agg := gaf.NewAggregator(repeat.IDSet(cands))
	st, err := gaf.LoadGAF(opt.GAF, opt.NumCPU, opt.Cfg.Progress, agg)
	if err != nil {
		return err
	}
	log.Printf("[runPaths] %s: %d records, %d through repeats, %d distinct paths\n",
		opt.GAF, st.Records, st.Kept, agg.Len())
	if n := st.Skipped(); n > 0 {
		log.Printf("WARN: [runPaths] %s: %d malformed records skipped\n", opt.GAF, n)
	}
	if st.StableID > 0 || st.OtherLen > 0 {
		log.Printf("[runPaths] ignored %d stable id paths and %d paths not of 3 steps\n", st.StableID, st.OtherLen)
	}

	res := recomb.Analyze(agg.Groups())
	log.Printf("[runPaths] %d reverse complement pairs\n", len(res.Pairs))
	if err := report.WriteResult(w, res); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
