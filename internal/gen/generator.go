package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"strings"
	"text/template"

	"lineq-generator/internal/analyze"
	"lineq-generator/internal/manifest"
	"lineq-generator/internal/plan"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// PackageName is the name of the generated package.
	PackageName string
	// OutputDir is the directory where generated files are written.
	OutputDir string
	// Filename is the name of the generated file.
	Filename string
	// GenerateComments enables doc comments on generated methods.
	GenerateComments bool
	// DeclareTypes emits `type X struct{}` for every receiver type.
	DeclareTypes bool
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		PackageName:      "inverses",
		OutputDir:        "./generated",
		Filename:         analyze.DefaultGeneratedFilename,
		GenerateComments: true,
	}
}

// ApplyManifest overrides config fields set in a manifest.
func (c GeneratorConfig) ApplyManifest(f *manifest.File) GeneratorConfig {
	if f == nil {
		return c
	}

	if f.Package != "" {
		c.PackageName = f.Package
	}

	if f.Output != "" {
		c.OutputDir = f.Output
	}

	if f.DeclareTypes {
		c.DeclareTypes = true
	}

	return c
}

// Generator generates Go code from a resolved plan.
type Generator struct {
	config GeneratorConfig
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	return &Generator{config: config}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file (e.g., "lineq_gen.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

type templateData struct {
	PackageName      string
	GenerateComments bool
	Types            []string
	Methods          []methodData
}

type methodData struct {
	Receiver    string
	Method      string
	Param       string
	Type        string
	Body        string
	Forward     string
	SolveFor    string
	Description string
}

// Generate renders all inversions of p into a single file.
func (g *Generator) Generate(p *plan.Plan) ([]GeneratedFile, error) {
	if p == nil || len(p.Inversions) == 0 {
		return nil, nil
	}

	if !token.IsIdentifier(g.config.PackageName) {
		return nil, fmt.Errorf("invalid package name %q", g.config.PackageName)
	}

	data := &templateData{
		PackageName:      g.config.PackageName,
		GenerateComments: g.config.GenerateComments,
	}

	if g.config.DeclareTypes {
		data.Types = p.Types()
	}

	for _, inv := range p.Inversions {
		if !inv.Kind.IsValid() {
			return nil, fmt.Errorf("generating %s.%s: invalid numeric kind %s", inv.Name, inv.Method, inv.Kind)
		}

		data.Methods = append(data.Methods, methodData{
			Receiver:    inv.Name,
			Method:      inv.Method,
			Param:       inv.Target,
			Type:        inv.Kind.GoName(),
			Body:        inv.Inverse.Body.String(),
			Forward:     inv.Body.String(),
			SolveFor:    inv.SolveFor,
			Description: strings.Join(strings.Fields(inv.Description), " "),
		})
	}

	var buf bytes.Buffer
	if err := fileTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		if g.config.OutputDir != "" {
			_ = writeDebugUnformatted(g.config.OutputDir, g.config.Filename, buf.Bytes())
		}

		return nil, fmt.Errorf("formatting code: %w", err)
	}

	return []GeneratedFile{{
		Filename: g.config.Filename,
		Content:  formatted,
	}}, nil
}

var fileTemplate = template.Must(template.New("inverses").Parse(`// Code generated by lineq-generator. DO NOT EDIT.

package {{.PackageName}}
{{range .Types}}
type {{.}} struct{}
{{end}}
{{range .Methods}}
{{if $.GenerateComments}}// {{.Method}} inverts ` + "`{{.Forward}}`" + ` for {{.SolveFor}}.
{{if .Description}}// {{.Description}}
{{end}}{{end}}func ({{.Receiver}}) {{.Method}}({{.Param}} {{.Type}}) {{.Type}} {
	return {{.Body}}
}
{{end}}
`))
