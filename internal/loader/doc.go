// Package loader reads and writes arrays as nested-list documents.
//
// A document is YAML or JSON (JSON parses as YAML) holding either a single
// scalar or a rectangular nested sequence:
//
//	[[1, 2, 3],
//	 [4, 5, 6]]
//
// The shape is inferred from the nesting and the values are parsed into the
// requested data type. Ragged sequences fail with tensor.ErrInvalidShape.
//
// Example:
//
//	x, err := loader.Load("matrix.yaml", tensor.Float64)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	_ = loader.Encode(os.Stdout, x) // [[1, 2, 3], [4, 5, 6]]
package loader
