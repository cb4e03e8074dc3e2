package main

import (
	"flag"
	"io"
	"strings"
)

type cliOptions struct {
	forceSoftware bool
	headless      bool
	verbose       bool
	configPath    string
}

// parseFlags parses the command line. Arguments that are not microserial
// flags are dropped so that a stray token from a launcher does not abort
// startup. flag.ErrHelp is returned for -h and -help.
func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	var o cliOptions
	fs := flag.NewFlagSet("microserial", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.BoolVar(&o.forceSoftware, "force-software", false, "skip GPU backends and render on the CPU")
	fs.BoolVar(&o.headless, "headless-detect", false, "print the renderer report and exit")
	fs.BoolVar(&o.verbose, "verbose", false, "log every renderer attempt")
	fs.StringVar(&o.configPath, "config", "", "override settings file path (optional)")

	err := fs.Parse(knownArgs(fs, args))
	return o, err
}

// knownArgs keeps the tokens fs defines, with the value token of a
// non-boolean flag written as "-name value".
func knownArgs(fs *flag.FlagSet, args []string) []string {
	var kept []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		if !strings.HasPrefix(arg, "-") {
			continue
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(arg, "-"), "=")
		if name == "h" || name == "help" {
			kept = append(kept, arg)
			continue
		}
		f := fs.Lookup(name)
		if f == nil {
			continue
		}
		kept = append(kept, arg)
		if bf, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && bf.IsBoolFlag() {
			continue
		}
		if !hasValue && i+1 < len(args) {
			i++
			kept = append(kept, args[i])
		}
	}
	return kept
}
