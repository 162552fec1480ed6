package specfile

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
	"cuelang.org/go/cue/token"

	"github.com/probelab/findist/dist"
)

// LoadMode controls how errors are handled during catalog loading.
type LoadMode int

const (
	// LoadModeFailFast stops on the first error encountered.
	LoadModeFailFast LoadMode = iota
	// LoadModeCollectAll collects all errors before returning.
	LoadModeCollectAll
)

// Load error codes, reported through LoadError.Code.
const (
	ErrCodeNotFound    = "E001" // catalog directory missing or not a directory
	ErrCodeNoFiles     = "E002" // no CUE files in the directory
	ErrCodeLoadFailed  = "E003" // CUE instance loading failed
	ErrCodeBuildFailed = "E004" // CUE value building failed
	ErrCodeCompile     = "E005" // a catalog entry failed to compile
	ErrCodeGeneric     = "E999"
)

// LoadError represents an error that occurred during catalog loading.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Catalog holds the distributions loaded from a directory of CUE files.
type Catalog struct {
	// Names lists the catalog entries in sorted order.
	Names []string

	// FileCount is the number of CUE files found.
	FileCount int

	dists map[string]*dist.Dist[string]
}

// Get returns the named distribution, or false if absent.
func (c *Catalog) Get(name string) (*dist.Dist[string], bool) {
	d, ok := c.dists[name]
	return d, ok
}

// Load loads a distribution catalog from a directory of CUE files.
// If mode is LoadModeFailFast, it returns on the first error; with
// LoadModeCollectAll it keeps going and reports every malformed entry.
// The returned catalog contains every entry that compiled, even when
// errors are also returned.
func Load(dir string, mode LoadMode) (*Catalog, []error) {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("catalog directory not found: %s", dir)}}
	}
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("error accessing catalog directory: %v", err)}}
	}
	if !info.IsDir() {
		return nil, []error{&LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("not a directory: %s", dir)}}
	}

	cueFiles, err := FindCUEFiles(dir)
	if err != nil {
		return nil, []error{&LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("error scanning directory: %v", err)}}
	}
	if len(cueFiles) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeNoFiles, Message: fmt.Sprintf("no CUE files found in %s", dir)}}
	}

	ctx := cuecontext.New()
	cfg := &load.Config{Dir: dir}
	instances := load.Instances([]string{"."}, cfg)
	if len(instances) == 0 {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: "no CUE instances loaded"}}
	}
	inst := instances[0]
	if inst.Err != nil {
		return nil, []error{&LoadError{Code: ErrCodeLoadFailed, Message: fmt.Sprintf("loading CUE files: %v", inst.Err)}}
	}

	value := ctx.BuildInstance(inst)
	if err := value.Err(); err != nil {
		return nil, []error{&LoadError{Code: ErrCodeBuildFailed, Message: fmt.Sprintf("building CUE value: %v", err)}}
	}

	catalog := &Catalog{
		FileCount: len(cueFiles),
		dists:     make(map[string]*dist.Dist[string]),
	}
	var errs []error

	distsVal := value.LookupPath(cue.ParsePath("dist"))
	if distsVal.Exists() {
		iter, iterErr := distsVal.Fields()
		if iterErr != nil {
			errs = append(errs, &LoadError{Code: ErrCodeGeneric, Message: fmt.Sprintf("iterating dist entries: %v", iterErr)})
			return catalog, errs
		}
		for iter.Next() {
			name := iter.Label()
			d, compileErr := Compile(name, iter.Value())
			if compileErr != nil {
				errs = append(errs, convertCompileError(compileErr))
				if mode == LoadModeFailFast {
					return catalog, errs
				}
				continue
			}
			catalog.dists[name] = d
			catalog.Names = append(catalog.Names, name)
		}
	}
	sort.Strings(catalog.Names)
	return catalog, errs
}

// FindCUEFiles returns the .cue files directly inside dir.
func FindCUEFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.HasSuffix(entry.Name(), ".cue") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	return files, nil
}

func convertCompileError(err error) error {
	if cErr, ok := err.(*CompileError); ok {
		where := cErr.Entry
		if cErr.Field != "" {
			where = where + "." + cErr.Field
		}
		return &LoadError{Code: ErrCodeCompile, Message: fmt.Sprintf("%s: %s", where, cErr.Message), Pos: cErr.Pos}
	}
	return &LoadError{Code: ErrCodeCompile, Message: err.Error()}
}
