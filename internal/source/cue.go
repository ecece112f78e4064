package source

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"

	"github.com/roach88/schedview/internal/model"
)

//go:embed schema.cue
var scheduleSchema string

// LoadCUE evaluates CUE source and decodes it into a schedule.
//
// The document is unified with the embedded #Schedule definition, so
// unknown fields, zero or negative ids, and wrongly typed values are
// reported with CUE positions. The document may use any CUE feature
// (references, comprehensions, defaults) as long as it evaluates to
// concrete data.
func LoadCUE(filename string, data []byte) (model.Schedule, error) {
	ctx := cuecontext.New()

	schema := ctx.CompileString(scheduleSchema, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return model.Schedule{}, &LoadError{Code: ErrCodeGeneric, Message: "invalid embedded schema", Err: err}
	}
	def := schema.LookupPath(cue.ParsePath("#Schedule"))

	doc := ctx.CompileBytes(data, cue.Filename(filename))
	if err := doc.Err(); err != nil {
		return model.Schedule{}, &LoadError{Code: ErrCodeLoadFailed, Message: "failed to parse CUE", Err: formatCUEError(err)}
	}

	value := def.Unify(doc)
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return model.Schedule{}, &LoadError{Code: ErrCodeBuildFailed, Message: "schedule does not match schema", Err: formatCUEError(err)}
	}

	var s model.Schedule
	if err := value.Decode(&s); err != nil {
		return model.Schedule{}, &LoadError{Code: ErrCodeBuildFailed, Message: "failed to decode schedule", Err: formatCUEError(err)}
	}
	return s, nil
}

func loadCUEFile(path string) (model.Schedule, error) {
	data, err := readFile(path)
	if err != nil {
		return model.Schedule{}, err
	}
	s, err := LoadCUE(path, data)
	return s, withPath(err, path)
}

// formatCUEError flattens a CUE error list into one error with positions.
func formatCUEError(err error) error {
	details := errors.Details(err, nil)
	if details == "" {
		return err
	}
	return fmt.Errorf("%s", details)
}
