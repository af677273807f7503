// Package syntax turns Go source into the flat records the reconciliation
// pipeline works on: per-function doc annotations and top-level return
// expressions. The pipeline never sees go/ast nodes, only these records.
package syntax

import (
	"fmt"
	"strings"
)

type ExprKind int

const (
	KindOther ExprKind = iota
	KindCall
	KindComposite
)

// Expr is a minimal expression record. Name is the call target's final
// selector component for calls, the literal's type name for composites and
// the identifier text for plain references; it is empty when the source
// expression has no useful name.
type Expr struct {
	Kind ExprKind
	Name string
	Args []Expr
}

// Return is one return statement found directly in a function body block.
type Return struct {
	Line int
	Expr *Expr // first result expression, nil for a bare "return"
}

const DirectiveResponse = "api:response"

// Annotation is one entry of a function's doc comment. Directive is set for
// lines of the form "//api:<name> ...", empty for prose (which includes any
// block comment kept as a single entry). Raw holds the verbatim comment text
// including markers, so pass-through entries survive regeneration byte for
// byte.
type Annotation struct {
	Directive string
	Args      []string
	Raw       string
}

// ResponseAnnotation builds a rendered api:response directive. The
// description is always quoted; the payload type is omitted when empty.
func ResponseAnnotation(code, description, payloadType string) Annotation {
	args := []string{code, description}
	raw := fmt.Sprintf("//%s %s \"%s\"", DirectiveResponse, code, description)

	if payloadType != "" {
		args = append(args, payloadType)
		raw += " " + payloadType
	}

	return Annotation{
		Directive: DirectiveResponse,
		Args:      args,
		Raw:       raw,
	}
}

type Function struct {
	Name    string
	File    string
	Line    int
	Result  string // rendered result type, empty unless exactly one unnamed result
	Doc     []Annotation
	Returns []Return

	// source byte offsets used by Rewrite
	docStart int
	docEnd   int
	hasDoc   bool
}

type File struct {
	Path      string
	Src       []byte
	Functions []Function
}

// parseAnnotation classifies one comment. Line comments starting exactly
// with "//api:" become directives, everything else is prose.
func parseAnnotation(text string) Annotation {
	rest, ok := strings.CutPrefix(text, "//")

	if !ok || !strings.HasPrefix(rest, "api:") {
		return Annotation{Raw: text}
	}

	fields := splitFields(rest)

	if len(fields) == 0 {
		return Annotation{Raw: text}
	}

	return Annotation{
		Directive: fields[0],
		Args:      fields[1:],
		Raw:       text,
	}
}

// splitFields splits on spaces but keeps double-quoted strings as one field,
// with the quotes stripped.
func splitFields(s string) []string {
	var fields []string
	var current strings.Builder
	inQuotes := false
	sawQuote := false

	flush := func() {
		if current.Len() > 0 || sawQuote {
			fields = append(fields, current.String())
		}
		current.Reset()
		sawQuote = false
	}

	for _, ch := range s {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
			sawQuote = true
		case ch == ' ' && !inQuotes:
			flush()
		default:
			current.WriteRune(ch)
		}
	}
	flush()

	return fields
}
