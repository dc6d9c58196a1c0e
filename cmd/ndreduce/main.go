// Package main provides the ndreduce CLI.
//
// Usage:
//
//	ndreduce sum matrix.yaml --axis 1 --as int8
//	ndreduce var samples.json --ddof 1 --keepdims
//	echo '[[1, 2], [3, 4]]' | ndreduce argmax - --axis -1
package main

import (
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

const version = "v0.1.0"

var (
	app = kingpin.New("ndreduce", "Axis-aware reductions over N-dimensional arrays stored as YAML or JSON nested lists.")

	axis     = app.Flag("axis", "Axis to reduce; negative values count from the end. All elements when omitted.").Short('a').String()
	keepDims = app.Flag("keepdims", "Keep the reduced axis with size 1.").Short('k').Bool()
	dtype    = app.Flag("dtype", "Result data type (default depends on the reduction).").Short('t').String()
	as       = app.Flag("as", "Data type the input values are parsed into.").Default("float64").String()
	ddof     = app.Flag("ddof", "Delta degrees of freedom for var and std.").Int()
	workers  = app.Flag("workers", "Worker goroutines (0 = one per CPU).").Short('w').Int()
	serial   = app.Flag("serial", "Reduce on a single goroutine.").Bool()
	verbose  = app.Flag("verbose", "Enable debug logging.").Short('v').Bool()

	versionCmd = app.Command("version", "Show version.")
)

func main() {
	commands := registerReductions(app)

	cmd := kingpin.MustParse(app.Parse(os.Args[1:]))
	if cmd == versionCmd.FullCommand() {
		fmt.Printf("ndreduce %s\n", version)
		return
	}

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	log.SetOutput(os.Stderr)
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	c := commands[cmd]
	req := request{
		op:       c.op,
		path:     *c.file,
		as:       *as,
		axis:     *axis,
		keepDims: *keepDims,
		dtype:    *dtype,
		ddof:     *ddof,
		workers:  *workers,
		serial:   *serial,
	}
	if err := run(os.Stdout, req); err != nil {
		log.Fatalf("%s: %v", cmd, err)
	}
}
