package render

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"sigs.k8s.io/yaml"

	"spatial/src/demo"
	"spatial/src/physics/geometry"
)

// Format names an output encoding for a demonstration report.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// Renderer writes a report to w.
type Renderer interface {
	Format() Format
	Render(w io.Writer, report demo.Report) error
}

var renderers = map[Format]Renderer{
	FormatText: textRenderer{},
	FormatJSON: jsonRenderer{},
	FormatYAML: yamlRenderer{},
}

// ForFormat returns the renderer registered for name. Matching ignores case.
func ForFormat(name string) (Renderer, error) {
	r, ok := renderers[Format(strings.ToLower(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q, expected one of: %s",
			ErrUnknownFormat, name, strings.Join(Formats(), ", "))
	}
	return r, nil
}

// Formats lists the registered format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for f := range renderers {
		names = append(names, string(f))
	}
	sort.Strings(names)
	return names
}

type textRenderer struct{}

func (textRenderer) Format() Format { return FormatText }

func (textRenderer) Render(w io.Writer, report demo.Report) (err error) {
	defer CheckError(&err)

	lines := []string{
		report.V1.String(),
		"|v1| = " + geometry.FormatFloat(report.Magnitude),
		"v1 + v2 = " + report.Sum.String(),
		"v1 · v2 = " + geometry.FormatFloat(report.Dot),
		"Collinear? " + formatBool(report.Collinear),
		report.Ball.String(),
		"Point inside ball? " + formatBool(report.Contains),
		"Surface area: " + geometry.FormatFloat(report.SurfaceArea),
		"Volume: " + geometry.FormatFloat(report.Volume),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return NewError(FormatText, err)
		}
	}
	return nil
}

func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

type jsonRenderer struct{}

func (jsonRenderer) Format() Format { return FormatJSON }

func (jsonRenderer) Render(w io.Writer, report demo.Report) (err error) {
	defer CheckError(&err)

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return NewError(FormatJSON, err)
	}
	return nil
}

type yamlRenderer struct{}

func (yamlRenderer) Format() Format { return FormatYAML }

func (yamlRenderer) Render(w io.Writer, report demo.Report) (err error) {
	defer CheckError(&err)

	data, err := yaml.Marshal(report)
	if err != nil {
		return NewError(FormatYAML, err)
	}
	if _, err := w.Write(data); err != nil {
		return NewError(FormatYAML, err)
	}
	return nil
}
