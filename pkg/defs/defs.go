// Package defs loads the static string set of the runtime and turns it into
// Go source.
//
// A definition file lists strings in the order their handles are assigned.
// That order is part of the handle contract: the same file always yields the
// same handles.
package defs

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"gopkg.in/yaml.v3"

	"github.com/DrSkyle/qstr/pkg/sys/intern"
)

// DefaultPackage is used when a definition file does not name one.
const DefaultPackage = "qstrdefs"

// ErrUnsupportedFormat is returned for files that are neither HCL nor YAML.
var ErrUnsupportedFormat = errors.New("defs: unsupported definition format")

// Definitions is an ordered static string set.
type Definitions struct {
	Package string   `yaml:"package"`
	Strings []string `yaml:"strings"`
	// Source is the file the set was loaded from, if any.
	Source string `yaml:"-"`
}

// Validate checks that every string and every generated name is unique.
func (d Definitions) Validate() error {
	seen := make(map[string]int, len(d.Strings))
	names := make(map[string]string, len(d.Strings))
	for i, s := range d.Strings {
		if j, ok := seen[s]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", intern.ErrDuplicateStatic, s, j, i)
		}
		seen[s] = i

		n := GoName(s)
		if other, ok := names[n]; ok {
			return fmt.Errorf("defs: %q and %q both map to %s", other, s, n)
		}
		names[n] = s
	}
	return nil
}

// Fingerprint identifies the ordered set.
func (d Definitions) Fingerprint() uint64 {
	return intern.Fingerprint(d.Strings)
}

// Load reads a definition file, choosing the parser by extension.
func Load(path string) (Definitions, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return Definitions{}, fmt.Errorf("reading definitions: %w", err)
	}

	var d Definitions
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		d, err = ParseHCL(src, path)
	case ".yaml", ".yml":
		d, err = ParseYAML(src)
	default:
		return Definitions{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
	if err != nil {
		return Definitions{}, err
	}
	d.Source = filepath.Base(path)
	return d, nil
}

var hclSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "package"},
		{Name: "strings", Required: true},
	},
}

// ParseHCL parses definitions of the form:
//
//	package = "qstrdefs"
//	strings = ["__init__", "<module>"]
func ParseHCL(src []byte, filename string) (Definitions, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return Definitions{}, fmt.Errorf("parsing %s: %w", filename, diags)
	}

	content, diags := file.Body.Content(hclSchema)
	if diags.HasErrors() {
		return Definitions{}, fmt.Errorf("parsing %s: %w", filename, diags)
	}

	d := Definitions{Package: DefaultPackage}
	if attr, ok := content.Attributes["package"]; ok {
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return Definitions{}, fmt.Errorf("%s: package: %w", filename, diags)
		}
		if v.Type() != cty.String || v.IsNull() {
			return Definitions{}, fmt.Errorf("%s: package must be a string", filename)
		}
		d.Package = v.AsString()
	}

	v, diags := content.Attributes["strings"].Expr.Value(nil)
	if diags.HasErrors() {
		return Definitions{}, fmt.Errorf("%s: strings: %w", filename, diags)
	}
	if v.IsNull() || !(v.Type().IsTupleType() || v.Type().IsListType()) {
		return Definitions{}, fmt.Errorf("%s: strings must be a list", filename)
	}
	for it, i := v.ElementIterator(), 0; it.Next(); i++ {
		_, ev := it.Element()
		if ev.Type() != cty.String || ev.IsNull() {
			return Definitions{}, fmt.Errorf("%s: strings[%d] is not a string", filename, i)
		}
		d.Strings = append(d.Strings, ev.AsString())
	}

	if err := d.Validate(); err != nil {
		return Definitions{}, err
	}
	return d, nil
}

// ParseYAML parses definitions of the form:
//
//	package: qstrdefs
//	strings: ["__init__", "<module>"]
func ParseYAML(src []byte) (Definitions, error) {
	var d Definitions
	if err := yaml.Unmarshal(src, &d); err != nil {
		return Definitions{}, fmt.Errorf("parsing yaml definitions: %w", err)
	}
	if d.Package == "" {
		d.Package = DefaultPackage
	}
	if err := d.Validate(); err != nil {
		return Definitions{}, err
	}
	return d, nil
}
