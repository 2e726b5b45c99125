package defs

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strconv"
	"text/template"
)

type genEntry struct {
	Name   string
	Handle int
	Quoted string
}

type genData struct {
	Package string
	Source  string
	Entries []genEntry
}

var genTmpl = template.Must(template.New("qstrdefs").Parse(`// Code generated by qstr gen{{if .Source}} from {{.Source}}{{end}}. DO NOT EDIT.

package {{.Package}}

import "github.com/DrSkyle/qstr/pkg/sys/intern"

// Static string handles, in registration order.
const (
{{- range .Entries}}
	{{.Name}} intern.Handle = {{.Handle}} // {{.Quoted}}
{{- end}}
)

// NumStatic is the number of static strings.
const NumStatic = {{len .Entries}}

// Statics lists the static strings in handle order.
var Statics = []string{
{{- range .Entries}}
	{{.Quoted}},
{{- end}}
}

// Fingerprint identifies this static set.
var Fingerprint = intern.Fingerprint(Statics)
`))

// Generate writes gofmt-formatted Go source declaring a handle constant per
// string and the Statics slice to pass to intern.New.
func Generate(w io.Writer, d Definitions) error {
	if err := d.Validate(); err != nil {
		return err
	}
	pkg := d.Package
	if pkg == "" {
		pkg = DefaultPackage
	}

	data := genData{Package: pkg, Source: d.Source}
	for i, s := range d.Strings {
		data.Entries = append(data.Entries, genEntry{
			Name:   GoName(s),
			Handle: i + 1,
			Quoted: strconv.Quote(s),
		})
	}

	var buf bytes.Buffer
	if err := genTmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering definitions: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}
