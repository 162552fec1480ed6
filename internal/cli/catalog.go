package cli

import (
	"errors"
	"fmt"

	"github.com/probelab/findist/dist"
	"github.com/probelab/findist/internal/specfile"
)

// loadCatalog loads a catalog for a command, converting load failures into
// rendered errors with command-error exit codes.
func loadCatalog(f *OutputFormatter, dir string) (*specfile.Catalog, error) {
	catalog, errs := specfile.Load(dir, specfile.LoadModeFailFast)
	if len(errs) > 0 {
		code := specfile.ErrCodeGeneric
		var loadErr *specfile.LoadError
		if errors.As(errs[0], &loadErr) {
			code = loadErr.Code
		}
		if err := f.Error(code, errs[0].Error(), nil); err != nil {
			return nil, err
		}
		return nil, WrapExitError(ExitCommandError, code, errs[0])
	}
	f.VerboseLog("Loaded %d distribution(s) from %d CUE file(s) in %s", len(catalog.Names), catalog.FileCount, dir)
	return catalog, nil
}

// getDist resolves a named distribution from the catalog.
func getDist(f *OutputFormatter, catalog *specfile.Catalog, name string) (*dist.Dist[string], error) {
	d, ok := catalog.Get(name)
	if !ok {
		msg := fmt.Sprintf("distribution %q not found in catalog (have %v)", name, catalog.Names)
		if err := f.Error(specfile.ErrCodeNotFound, msg, nil); err != nil {
			return nil, err
		}
		return nil, NewExitError(ExitCommandError, msg)
	}
	return d, nil
}

// rowsOf renders a string-outcome distribution as weight rows in domain
// order.
func rowsOf(d *dist.Dist[string]) []WeightRow {
	outcomes := d.Outcomes()
	weights := d.Weights()
	rows := make([]WeightRow, len(outcomes))
	for i, o := range outcomes {
		rows[i] = WeightRow{Outcome: o, Weight: weights[i]}
	}
	return rows
}
