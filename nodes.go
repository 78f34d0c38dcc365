package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/jwaldrip/odin/cli"

	"github.com/mudesheng/repeatpath/config"
	"github.com/mudesheng/repeatpath/gfa"
	"github.com/mudesheng/repeatpath/repeat"
	"github.com/mudesheng/repeatpath/report"
	"github.com/mudesheng/repeatpath/utils"
)

type NodesOptions struct {
	utils.ArgsOpt
	GFA string
	Cfg config.Config
}

func checkNodesArgs(c cli.Command) (opt NodesOptions, suc bool) {
	opt.GFA = c.Flag("GFA").String()
	if opt.GFA == "" {
		log.Printf("[checkNodesArgs] argument 'GFA' not set\n")
		return opt, false
	}
	return opt, true
}

func Nodes(c cli.Command) {
	gOpt, suc := utils.CheckGlobalArgs(c.Parent())
	if !suc {
		log.Fatalf("[Nodes] check global Arguments error, opt: %v\n", gOpt)
	}
	opt, suc := checkNodesArgs(c)
	if !suc {
		log.Fatalf("[Nodes] check Arguments error, opt: %v\n", opt)
	}
	opt.ArgsOpt = gOpt
	opt.Cfg, suc = loadConfig(c, gOpt)
	if !suc {
		log.Fatalf("[Nodes] load configure error, C: %v\n", gOpt.CfgFn)
	}
	if boolFlag(c, "Graph") {
		opt.Cfg.Dot = true
	}
	if boolFlag(c, "Fasta") {
		opt.Cfg.Fasta = true
	}
	log.Printf("[Nodes] opt: %+v\n", opt)

	stop, err := utils.StartCPUProfile(opt.Cpuprofile)
	if err != nil {
		log.Fatalf("[Nodes] %v\n", err)
	}
	defer stop()

	if err := runNodes(opt, os.Stdout); err != nil {
		log.Fatalf("[Nodes] %v\n", err)
	}
}

// runNodes loads the graph, prints the repeat table to w and writes the
// optional DOT and FASTA files next to the output prefix.
func runNodes(opt NodesOptions, w io.Writer) error {
	g, st, err := gfa.LoadGFA(opt.GFA, opt.NumCPU)
	if err != nil {
		return err
	}
	logGraph(opt.GFA, g, st)

	cands := repeat.Detect(g, opt.Cfg.RepeatOptions())
	log.Printf("[runNodes] found %d repeat nodes\n", len(cands))
	if err := report.WriteRepeats(w, cands); err != nil {
		return fmt.Errorf("write repeat table: %w", err)
	}

	if opt.Cfg.Dot {
		fn := opt.Prefix + ".repeats.dot"
		if err := writeFile(fn, func(fp io.Writer) error {
			return gfa.GraphvizRepeats(g, repeat.IDs(cands), fp)
		}); err != nil {
			return err
		}
		log.Printf("[runNodes] dot graph written to %s\n", fn)
	}
	if opt.Cfg.Fasta {
		fn := opt.Prefix + ".repeats.fa"
		var n int
		if err := writeFile(fn, func(fp io.Writer) (err error) {
			n, err = repeat.WriteFasta(fp, g, cands)
			return err
		}); err != nil {
			return err
		}
		log.Printf("[runNodes] %d repeat sequences written to %s\n", n, fn)
	}
	return nil
}

func logGraph(fn string, g *gfa.Graph, st gfa.ReadStats) {
	log.Printf("[logGraph] %s: %d lines, %d segments, %d links, fingerprint %016x\n",
		fn, st.Lines, st.Segments, st.Links, g.Fingerprint())
	if st.Skipped > 0 {
		log.Printf("WARN: [logGraph] %s: %d malformed records skipped\n", fn, st.Skipped)
	}
}

func writeFile(fn string, write func(io.Writer) error) error {
	fp, err := os.Create(fn)
	if err != nil {
		return fmt.Errorf("create %s: %w", fn, err)
	}
	if err := write(fp); err != nil {
		fp.Close()
		return fmt.Errorf("write %s: %w", fn, err)
	}
	return fp.Close()
}
