package main

import (
	"github.com/jwaldrip/odin/cli"
)

var app = cli.New("1.0.0", "Repeat node and path analysis for bidirected assembly graphs", func(c cli.Command) {})

func init() {
	defineGlobalFlags(app)
	nodes := app.DefineSubCommand("nodes", "find repeat nodes in a GFA graph", Nodes)
	{
		nodes.DefineStringFlag("GFA", "", "input GFA file, may be .gz|.bgz|.zst|.br")
		defineThresholdFlags(nodes)
		nodes.DefineBoolFlag("Graph", false, "output dot graph file of the repeats")
		nodes.DefineBoolFlag("Fasta", false, "output fasta file of the repeat sequences")
	}
	paths := app.DefineSubCommand("paths", "count repeat paths and score reverse complement pairs", Paths)
	{
		paths.DefineStringFlag("GFA", "", "input GFA file, may be .gz|.bgz|.zst|.br")
		paths.DefineStringFlag("GAF", "", "input GAF alignment file, may be .gz|.bgz|.zst|.br")
		defineThresholdFlags(paths)
		paths.DefineBoolFlag("Progress", false, "show progress bar while reading GAF")
	}
}

func main() {
	app.Start()
}
