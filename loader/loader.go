// Package loader reads and writes arrays as YAML or JSON nested lists.
//
// This package wraps the internal loader and exports a small public API.
//
// Example usage:
//
//	import (
//	    "github.com/born-ml/ndreduce/backend/cpu"
//	    "github.com/born-ml/ndreduce/loader"
//	    "github.com/born-ml/ndreduce/tensor"
//	)
//
//	x, err := loader.Load("matrix.json", tensor.Float64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	m, _ := cpu.New().ReduceMean(x, tensor.WithAxis(0))
//	_ = loader.Encode(os.Stdout, m)
package loader

import (
	"io"

	"github.com/born-ml/ndreduce/internal/loader"
	"github.com/born-ml/ndreduce/tensor"
)

// Load reads a document from path ("-" reads standard input) and decodes it as dtype.
func Load(path string, dtype tensor.DataType) (*tensor.RawTensor, error) {
	return loader.Load(path, dtype)
}

// Decode parses one document from r into a new contiguous tensor of dtype.
// The shape is inferred from the nesting; ragged input fails with tensor.ErrInvalidShape.
func Decode(r io.Reader, dtype tensor.DataType) (*tensor.RawTensor, error) {
	return loader.Decode(r, dtype)
}

// Encode writes t to w as a flow-style nested list.
func Encode(w io.Writer, t *tensor.RawTensor) error {
	return loader.Encode(w, t)
}
