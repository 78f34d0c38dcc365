package main

import (
	"fmt"
	"log"

	"github.com/jwaldrip/odin/cli"

	"github.com/mudesheng/repeatpath/config"
	"github.com/mudesheng/repeatpath/utils"
)

// unsetFlag is the default of the threshold flags, so any value given on
// the command line, the built-in default included, can be told apart.
const unsetFlag = -1

func defineGlobalFlags(a *cli.CLI) {
	a.DefineStringFlag("C", "", "YAML configure file")
	a.DefineStringFlag("cpuprofile", "", "write cpu profile to file")
	a.DefineStringFlag("p", "rp", "prefix of the output file")
	a.DefineIntFlag("t", 1, "number of CPU used")
}

func defineThresholdFlags(sc *cli.SubCommand) {
	sc.DefineIntFlag("r", unsetFlag, fmt.Sprintf("max repeat node size[%d]", config.DefaultRepeatSizeLimit))
	sc.DefineIntFlag("n", unsetFlag, fmt.Sprintf("min size of every repeat neighbor[%d]", config.DefaultNeighborSizeMinimum))
	sc.DefineIntFlag("i", unsetFlag, fmt.Sprintf("min in/out degree, a repeat needs at least 2*i links[%d]", config.DefaultInOutDegreeThreshold))
}

// ThresholdFlags holds the -r, -n and -i values, unsetFlag when not given.
type ThresholdFlags struct {
	RepeatSizeLimit      int
	NeighborSizeMinimum  int
	InOutDegreeThreshold int
}

func checkThresholdFlags(c cli.Command) (tf ThresholdFlags, suc bool) {
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"r", &tf.RepeatSizeLimit},
		{"n", &tf.NeighborSizeMinimum},
		{"i", &tf.InOutDegreeThreshold},
	} {
		v, ok := c.Flag(f.name).Get().(int)
		if !ok {
			log.Printf("[checkThresholdFlags] argument '%s': %v set error\n", f.name, c.Flag(f.name))
			return tf, false
		}
		*f.dst = v
	}
	return tf, true
}

// Apply overrides cfg with every flag that was given.
func (tf ThresholdFlags) Apply(cfg config.Config) config.Config {
	if tf.RepeatSizeLimit != unsetFlag {
		cfg.RepeatSizeLimit = tf.RepeatSizeLimit
	}
	if tf.NeighborSizeMinimum != unsetFlag {
		cfg.NeighborSizeMinimum = tf.NeighborSizeMinimum
	}
	if tf.InOutDegreeThreshold != unsetFlag {
		cfg.InOutDegreeThreshold = tf.InOutDegreeThreshold
	}
	return cfg
}

// loadConfig reads the -C file and the RP_* environment, then lets the
// threshold flags of c override both.
func loadConfig(c cli.Command, gOpt utils.ArgsOpt) (cfg config.Config, suc bool) {
	cfg, err := config.Load(gOpt.CfgFn)
	if err != nil {
		log.Printf("[loadConfig] config 'C': %v err: %v\n", gOpt.CfgFn, err)
		return cfg, false
	}
	tf, suc := checkThresholdFlags(c)
	if !suc {
		return cfg, false
	}
	cfg = tf.Apply(cfg)
	if err := cfg.Validate(); err != nil {
		log.Printf("[loadConfig] %v\n", err)
		return cfg, false
	}
	return cfg, true
}

func boolFlag(c cli.Command, name string) bool {
	v, ok := c.Flag(name).Get().(bool)
	if !ok {
		log.Fatalf("[boolFlag] argument '%s': %v set error, must set true|false\n", name, c.Flag(name))
	}
	return v
}
