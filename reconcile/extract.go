package reconcile

import (
	"fmt"

	"github.com/masnyjimmy/respsync/syntax"
)

// Entry is one declared response: the code, the author's description and the
// payload type name ("" when the response carries no typed payload).
type Entry struct {
	Code        Code
	Description string
	PayloadType string
}

// Site is one observed return: the code a return expression produces and the
// payload type it constructs, if any.
type Site struct {
	Code        Code
	PayloadType string
}

// DefaultPlaceholder is the description given to entries the tool creates.
const DefaultPlaceholder = "TODO: describe response"

// helperCodes maps the fixed response constructors to their codes. The two
// parametric forms (Content, StatusCode) name the code in their first
// argument instead and are handled separately.
var helperCodes = map[string]Code{
	"Ok":                  OK,
	"Created":             Created,
	"BadRequest":          BadRequest,
	"Conflict":            Conflict,
	"NotFound":            NotFound,
	"Unauthorized":        Unauthorized,
	"InternalServerError": InternalServerError,
	"Redirect":            Found,
}

var parametricHelpers = map[string]bool{
	"Content":    true,
	"StatusCode": true,
}

// Pipeline runs extraction, reconciliation and regeneration for one function
// at a time. Placeholder and extra helper mappings come from configuration.
type Pipeline struct {
	placeholder string
	helpers     map[string]Code
}

func NewPipeline(placeholder string, extraHelpers map[string]Code) *Pipeline {
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	helpers := make(map[string]Code, len(helperCodes)+len(extraHelpers))

	for name, code := range helperCodes {
		helpers[name] = code
	}
	for name, code := range extraHelpers {
		helpers[name] = code
	}

	return &Pipeline{
		placeholder: placeholder,
		helpers:     helpers,
	}
}

// siteCode resolves the response code of one return expression.
func (p *Pipeline) siteCode(expr *syntax.Expr) (Code, error) {
	if expr == nil || expr.Kind != syntax.KindCall {
		// bare value, implicit 200
		return OK, nil
	}

	if code, ok := p.helpers[expr.Name]; ok {
		return code, nil
	}

	if parametricHelpers[expr.Name] {
		if len(expr.Args) == 0 {
			return 0, fmt.Errorf("%v: missing status argument: %w", expr.Name, ErrUnknownStatusCode)
		}

		code, err := CodeByName(expr.Args[0].Name)

		if err != nil {
			return 0, fmt.Errorf("%v: %w", expr.Name, err)
		}

		return code, nil
	}

	return 0, fmt.Errorf("%w: %v", ErrUnknownResponseForm, expr.Name)
}

// firstPayload finds the first constructed object in a return expression,
// depth first. Later constructions in the same return do not count.
func firstPayload(expr *syntax.Expr) string {
	if expr == nil {
		return ""
	}

	if expr.Kind == syntax.KindComposite {
		return expr.Name
	}

	for idx := range expr.Args {
		if name := firstPayload(&expr.Args[idx]); name != "" {
			return name
		}
	}

	return ""
}

// ExtractReturns derives one Site per top-level return statement. Any return
// invoking a constructor outside the vocabulary aborts the whole extraction.
func (p *Pipeline) ExtractReturns(returns []syntax.Return) ([]Site, error) {
	sites := make([]Site, 0, len(returns))

	for _, ret := range returns {
		code, err := p.siteCode(ret.Expr)

		if err != nil {
			return nil, fmt.Errorf("return at line %v: %w", ret.Line, err)
		}

		sites = append(sites, Site{
			Code:        code,
			PayloadType: firstPayload(ret.Expr),
		})
	}

	return sites, nil
}

// ExtractDeclared reads the api:response directives of a doc comment into a
// map keyed by code. A duplicate code overwrites the earlier entry; the last
// declaration wins.
func ExtractDeclared(doc []syntax.Annotation) (map[Code]Entry, error) {
	declared := make(map[Code]Entry)

	for _, ann := range doc {
		if ann.Directive != syntax.DirectiveResponse {
			continue
		}

		if len(ann.Args) == 0 {
			return nil, fmt.Errorf("%v: missing status argument: %w", ann.Raw, ErrUnknownStatusCode)
		}

		code, err := CodeByName(ann.Args[0])

		if err != nil {
			return nil, err
		}

		entry := Entry{Code: code}

		if len(ann.Args) > 1 {
			entry.Description = ann.Args[1]
		}
		if len(ann.Args) > 2 {
			entry.PayloadType = ann.Args[2]
		}

		declared[code] = entry
	}

	return declared, nil
}
