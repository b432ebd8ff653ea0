package iodatasets

import (
	"fmt"

	"github.com/gnames/ednamap/pkg/errcode"
	"github.com/gnames/gn"
)

// DatasetsConfigError creates an error for when datasets.yaml
// cannot be loaded.
func DatasetsConfigError(path string, err error) error {
	msg := `Cannot load datasets registry

<em>Registry file:</em> %s

<em>Possible causes:</em>
  - File does not exist
  - Invalid YAML format
  - Invalid dataset entry

<em>How to fix:</em>
  1. Check if file exists: <em>ls -l %s</em>
  2. Validate YAML syntax
  3. Register at least one dataset under the <em>datasets:</em> key`

	vars := []any{path, path}

	return &gn.Error{
		Code: errcode.DatasetsConfigError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("failed to load datasets config: %w", err),
	}
}
