package dataset

import (
	_ "embed"
)

//go:embed defaults/correlations.yaml
var defaultDatasetYAML []byte

// Default returns the embedded sample dataset. Panics only if the embedded
// file is malformed, which is a build defect.
func Default() *Dataset {
	d, err := Parse(defaultDatasetYAML)
	if err != nil {
		panic(err)
	}
	return d
}
