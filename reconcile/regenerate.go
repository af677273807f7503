package reconcile

import (
	"github.com/masnyjimmy/respsync/syntax"
)

// Regenerate produces the replacement doc annotation list. Existing
// api:response directives are rebuilt in place from their original code and
// description plus the reconciled payload type; every other line passes
// through verbatim. Codes that were never declared are appended after all
// originals, in first-observation order.
func Regenerate(res Result, doc []syntax.Annotation) []syntax.Annotation {
	out := make([]syntax.Annotation, 0, len(doc)+len(res.Added))

	for _, ann := range doc {
		if ann.Directive != syntax.DirectiveResponse || len(ann.Args) == 0 {
			out = append(out, ann)
			continue
		}

		code, err := CodeByName(ann.Args[0])

		if err != nil {
			// extraction already vetted the directives; keep the line as is
			out = append(out, ann)
			continue
		}

		entry := res.Entries[code]
		description := entry.Description

		if len(ann.Args) > 1 {
			description = ann.Args[1]
		}

		out = append(out, syntax.ResponseAnnotation(code.String(), description, entry.PayloadType))
	}

	for _, code := range res.Added {
		entry := res.Entries[code]
		out = append(out, syntax.ResponseAnnotation(code.String(), entry.Description, entry.PayloadType))
	}

	return out
}

// Run is the whole pipeline for one function: extract, reconcile,
// regenerate. A false changed flag means declared and observed state already
// agree and no edit is needed; the annotation list is nil in that case.
func (p *Pipeline) Run(fn *syntax.Function) ([]syntax.Annotation, bool, error) {
	sites, err := p.ExtractReturns(fn.Returns)

	if err != nil {
		return nil, false, err
	}

	declared, err := ExtractDeclared(fn.Doc)

	if err != nil {
		return nil, false, err
	}

	res := p.Reconcile(declared, sites)

	if !res.Changed {
		return nil, false, nil
	}

	return Regenerate(res, fn.Doc), true, nil
}
