package lesson

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueyaml "cuelang.org/go/encoding/yaml"
)

//go:embed schema.cue
var schemaSource []byte

// validator checks raw YAML documents against the definitions in schema.cue.
type validator struct {
	ctx    *cue.Context
	schema cue.Value
}

func newValidator() (*validator, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileBytes(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("invalid lesson schema: %v", err)
	}
	return &validator{ctx: ctx, schema: schema}, nil
}

// validate unifies the document with definition def (e.g. "#Lesson") and
// requires the result to be concrete.
func (v *validator) validate(def, filename string, data []byte) error {
	f, err := cueyaml.Extract(filename, data)
	if err != nil {
		return fmt.Errorf("invalid YAML in %s: %v", filename, err)
	}
	doc := v.ctx.BuildFile(f)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("invalid document %s: %v", filename, err)
	}
	d := v.schema.LookupPath(cue.ParsePath(def))
	if !d.Exists() {
		return fmt.Errorf("missing schema definition: %s", def)
	}
	if err := d.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("invalid document %s: %v", filename, err)
	}
	return nil
}
