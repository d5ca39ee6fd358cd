// Package gen implements the fallback tier of build-time assertions:
// declarations generated from source directives whose compilation is the
// check itself, with no analyzer or vet step required.
//
// A directive has the form
//
//	//buildcheck:assert <expr> [name=<ident>] [-- <message>]
//
// and produces a named constant bound to the expression plus an inert
// map-literal declaration that contains a duplicate key exactly when the
// expression is a constant false:
//
//	const staticAssertion_0 = pageSize%slotSize == 0
//	var _ = map[bool]struct{}{false: {}, staticAssertion_0: {}}
//
// A true constant yields keys {false, true} and compiles away completely; a
// false constant yields the key false twice and the compiler rejects the
// file. An expression that is not constant fails at the const declaration.
// The message, which the toolchain cannot carry into that diagnostic, is
// emitted as a comment beside the declaration so the build error lands next
// to the text.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"strings"
)

// directivePrefix marks assertion directives, following the
// //go:generate comment convention.
const directivePrefix = "//buildcheck:assert"

// identPrefix names the generated artifacts. A caller-supplied or
// line-derived suffix completes the identifier.
const identPrefix = "staticAssertion_"

// Directive is one parsed //buildcheck:assert directive.
type Directive struct {
	// Expr is the assertion condition; it must be a constant boolean
	// expression in the target package's scope.
	Expr string
	// Name is the explicit identifier suffix, empty when generated.
	Name string
	// Message is the human-readable text after "--", possibly empty.
	Message string
	// Line is the directive's source line, used in ModeLine.
	Line int
}

// File is a scanned source file.
type File struct {
	// Package is the source file's package name.
	Package string
	// Directives are the assertion directives in source order.
	Directives []Directive
}

// ScanFile parses a Go source file and collects its assertion directives.
// src may be nil, in which case the file is read from disk.
func ScanFile(filename string, src []byte) (*File, error) {
	fset := token.NewFileSet()

	parsed, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", filename, err)
	}

	out := &File{Package: parsed.Name.Name}

	for _, group := range parsed.Comments {
		for _, comment := range group.List {
			if !strings.HasPrefix(comment.Text, directivePrefix) {
				continue
			}

			directive, err := parseDirective(comment.Text, fset.Position(comment.Pos()).Line)
			if err != nil {
				return nil, fmt.Errorf("%s:%d: %w", filename, fset.Position(comment.Pos()).Line, err)
			}

			out.Directives = append(out.Directives, directive)
		}
	}

	return out, nil
}

// parseDirective splits one directive comment into expression, explicit
// name and message.
func parseDirective(text string, line int) (Directive, error) {
	body := strings.TrimPrefix(text, directivePrefix)
	if body == "" || !strings.HasPrefix(body, " ") {
		return Directive{}, fmt.Errorf("malformed directive %q", text)
	}

	directive := Directive{Line: line}

	body, directive.Message, _ = strings.Cut(body, " -- ")
	directive.Message = strings.TrimSpace(directive.Message)

	fields := strings.Fields(body)
	if len(fields) == 0 {
		return Directive{}, fmt.Errorf("directive %q has no expression", text)
	}

	if name, ok := strings.CutPrefix(fields[len(fields)-1], "name="); ok {
		if !token.IsIdentifier(name) {
			return Directive{}, fmt.Errorf("explicit name %q is not a valid identifier", name)
		}

		directive.Name = name
		fields = fields[:len(fields)-1]
	}

	directive.Expr = strings.Join(fields, " ")
	if directive.Expr == "" {
		return Directive{}, fmt.Errorf("directive %q has no expression", text)
	}

	if _, err := parser.ParseExpr(directive.Expr); err != nil {
		return Directive{}, fmt.Errorf("assertion expression %q does not parse: %w", directive.Expr, err)
	}

	return directive, nil
}

// Generate renders the generated file for one scanned source file.
// It returns nil output when the file has no directives.
func Generate(file *File, cfg Config) ([]byte, error) {
	if len(file.Directives) == 0 {
		return nil, nil
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	buf.WriteString("// Code generated by staticassert-gen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", file.Package)

	for _, path := range cfg.Imports {
		fmt.Fprintf(&buf, "import %q\n", path)
	}

	explicit := map[string]int{}
	counter := 0

	for _, directive := range file.Directives {
		ident, err := identFor(directive, cfg.Mode, &counter, explicit)
		if err != nil {
			return nil, err
		}

		buf.WriteString("\n")

		if directive.Message != "" {
			fmt.Fprintf(&buf, "// %s\n", directive.Message)
		}

		// The map holds keys {false, <cond>}: a violated assertion makes
		// both keys false and the duplicate fails the build.
		fmt.Fprintf(&buf, "const %s = %s\n", ident, directive.Expr)
		fmt.Fprintf(&buf, "var _ = map[bool]struct{}{false: {}, %s: {}}\n", ident)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated assertions: %w", err)
	}

	return formatted, nil
}

// identFor produces the identifier for one directive. Counter-mode
// identifiers never repeat within a run; explicit duplicates are rejected
// here because the generator can see them. Line-mode duplicates are emitted
// as-is: the compiler's redefinition error is the documented sharp edge of
// that mode.
func identFor(directive Directive, mode Mode, counter *int, explicit map[string]int) (string, error) {
	if directive.Name != "" {
		if prev, dup := explicit[directive.Name]; dup {
			return "", fmt.Errorf("explicit name %q on line %d already used on line %d",
				directive.Name, directive.Line, prev)
		}

		explicit[directive.Name] = directive.Line

		return identPrefix + directive.Name, nil
	}

	if mode == ModeLine {
		return fmt.Sprintf("%sL%d", identPrefix, directive.Line), nil
	}

	ident := fmt.Sprintf("%s%d", identPrefix, *counter)
	*counter++

	return ident, nil
}

// Result is the outcome of processing one source file.
type Result struct {
	// OutputPath is the generated file's path beside the source file.
	OutputPath string
	// Source is the formatted generated file content.
	Source []byte
}

// Process scans a source file and renders its generated counterpart.
// It returns nil when the file has no directives.
func Process(filename string, cfg Config) (*Result, error) {
	file, err := ScanFile(filename, nil)
	if err != nil {
		return nil, err
	}

	source, err := Generate(file, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	if source == nil {
		return nil, nil
	}

	return &Result{
		OutputPath: strings.TrimSuffix(filename, ".go") + cfg.Suffix,
		Source:     source,
	}, nil
}

// Write stores a result on disk with the conventional generated-file
// permissions.
func (r *Result) Write() error {
	if err := os.WriteFile(r.OutputPath, r.Source, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.OutputPath, err)
	}

	return nil
}
