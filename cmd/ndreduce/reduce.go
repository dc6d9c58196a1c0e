package main

import (
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/born-ml/ndreduce/backend/cpu"
	"github.com/born-ml/ndreduce/loader"
	"github.com/born-ml/ndreduce/tensor"
)

type reduceMethod func(b *cpu.Backend, x *tensor.RawTensor, opts ...tensor.ReduceOption) (*tensor.RawTensor, error)

var reductions = map[string]struct {
	help   string
	method reduceMethod
}{
	"max":    {"Largest element.", (*cpu.Backend).ReduceMax},
	"min":    {"Smallest element.", (*cpu.Backend).ReduceMin},
	"argmax": {"Index of the first largest element.", (*cpu.Backend).ReduceArgMax},
	"argmin": {"Index of the first smallest element.", (*cpu.Backend).ReduceArgMin},
	"sum":    {"Sum in the widened accumulator type.", (*cpu.Backend).ReduceSum},
	"prod":   {"Product in the widened accumulator type.", (*cpu.Backend).ReduceProd},
	"mean":   {"Arithmetic mean.", (*cpu.Backend).ReduceMean},
	"var":    {"Variance (two-pass, divided by n - ddof).", (*cpu.Backend).ReduceVar},
	"std":    {"Standard deviation.", (*cpu.Backend).ReduceStd},
}

type command struct {
	op   string
	file *string
}

// registerReductions adds one sub-command per reduction, keyed by command name.
func registerReductions(app *kingpin.Application) map[string]command {
	names := make([]string, 0, len(reductions))
	for name := range reductions {
		names = append(names, name)
	}
	sort.Strings(names)

	commands := make(map[string]command, len(names))
	for _, name := range names {
		clause := app.Command(name, reductions[name].help)
		commands[clause.FullCommand()] = command{
			op:   name,
			file: clause.Arg("file", "YAML or JSON array file, - for stdin.").Required().String(),
		}
	}
	return commands
}

// request is one parsed CLI invocation.
type request struct {
	op       string
	path     string
	as       string
	axis     string
	keepDims bool
	dtype    string
	ddof     int
	workers  int
	serial   bool
}

func (r request) options() ([]tensor.ReduceOption, error) {
	var opts []tensor.ReduceOption
	if r.axis != "" {
		axis, err := strconv.Atoi(r.axis)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid axis %q", r.axis)
		}
		opts = append(opts, tensor.WithAxis(axis))
	}
	if r.keepDims {
		opts = append(opts, tensor.WithKeepDims())
	}
	if r.dtype != "" {
		dt, err := tensor.ParseDataType(r.dtype)
		if err != nil {
			return nil, err
		}
		opts = append(opts, tensor.WithDType(dt))
	}
	if r.ddof != 0 {
		opts = append(opts, tensor.WithDDOF(r.ddof))
	}
	return opts, nil
}

func (r request) config() cpu.Config {
	if r.serial {
		return cpu.Sequential()
	}
	cfg := cpu.DefaultConfig()
	if r.workers > 0 {
		cfg.NumWorkers = r.workers
		cfg.Enabled = r.workers > 1
	}
	return cfg
}

// run loads the input, reduces it and writes the result to w as a nested list.
func run(w io.Writer, r request) error {
	reduction, ok := reductions[r.op]
	if !ok {
		return errors.Errorf("unknown reduction %q", r.op)
	}

	src, err := tensor.ParseDataType(r.as)
	if err != nil {
		return err
	}
	opts, err := r.options()
	if err != nil {
		return err
	}

	x, err := loader.Load(r.path, src)
	if err != nil {
		return err
	}
	log.WithFields(arrayFields(x)).Debug("loaded array")

	cfg := r.config()
	start := time.Now()
	result, err := reduction.method(cpu.NewWithConfig(cfg), x, opts...)
	if err != nil {
		return err
	}
	log.WithFields(log.Fields{
		"op":      r.op,
		"shape":   result.Shape(),
		"dtype":   result.DType(),
		"workers": cfg.NumWorkers,
		"elapsed": time.Since(start),
	}).Debug("reduced")

	return loader.Encode(w, result)
}

// arrayFields describes a loaded array for the debug log.
// Decimal elements have no fixed width, so their size is left out.
func arrayFields(x *tensor.RawTensor) log.Fields {
	n := x.NumElements()
	fields := log.Fields{
		"shape":    x.Shape(),
		"dtype":    x.DType(),
		"elements": humanize.Comma(int64(n)),
	}
	if size := x.DType().Size(); size > 0 {
		fields["size"] = humanize.Bytes(uint64(n * size))
	}
	return fields
}
