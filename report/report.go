// Package report aggregates reconciliation results over a source tree into
// a drift report that can be printed, serialized or served.
package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/masnyjimmy/respsync/reconcile"
	"github.com/masnyjimmy/respsync/syntax"
)

// Finding is the drift found on one handler function, or the extraction
// error that aborted its reconciliation.
type Finding struct {
	File       string   `json:"file" yaml:"file"`
	Function   string   `json:"function" yaml:"function"`
	Line       int      `json:"line" yaml:"line"`
	Added      []string `json:"added,omitempty" yaml:"added,omitempty"`
	Retyped    []string `json:"retyped,omitempty" yaml:"retyped,omitempty"`
	Directives []string `json:"directives,omitempty" yaml:"directives,omitempty"`
	Error      string   `json:"error,omitempty" yaml:"error,omitempty"`

	doc []syntax.Annotation
	fn  *syntax.Function
}

type Report struct {
	Root     string    `json:"root" yaml:"root"`
	Handlers int       `json:"handlers" yaml:"handlers"`
	Findings []Finding `json:"findings" yaml:"findings"`
}

func (r *Report) HasDrift() bool {
	for _, f := range r.Findings {
		if f.Error == "" {
			return true
		}
	}
	return false
}

func (r *Report) HasErrors() bool {
	for _, f := range r.Findings {
		if f.Error != "" {
			return true
		}
	}
	return false
}

// Scan reconciles every eligible handler in the parsed files. A function is
// eligible when its single result type matches responseType; everything else
// in a handler file is left alone.
func Scan(root string, files []*syntax.File, p *reconcile.Pipeline, responseType string) *Report {
	out := &Report{Root: root}

	for _, file := range files {
		for idx := range file.Functions {
			fn := &file.Functions[idx]

			if fn.Result != responseType {
				continue
			}

			out.Handlers++
			out.scan(file, fn, p)
		}
	}

	return out
}

func (r *Report) scan(file *syntax.File, fn *syntax.Function, p *reconcile.Pipeline) {
	finding := Finding{
		File:     file.Path,
		Function: fn.Name,
		Line:     fn.Line,
		fn:       fn,
	}

	sites, err := p.ExtractReturns(fn.Returns)

	if err != nil {
		finding.Error = err.Error()
		r.Findings = append(r.Findings, finding)
		return
	}

	declared, err := reconcile.ExtractDeclared(fn.Doc)

	if err != nil {
		finding.Error = err.Error()
		r.Findings = append(r.Findings, finding)
		return
	}

	res := p.Reconcile(declared, sites)

	if !res.Changed {
		return
	}

	for _, code := range res.Added {
		finding.Added = append(finding.Added, code.String())
	}

	for code, entry := range res.Entries {
		if before, ok := declared[code]; ok && before.PayloadType != entry.PayloadType {
			finding.Retyped = append(finding.Retyped, code.String())
		}
	}
	sort.Strings(finding.Retyped)

	finding.doc = reconcile.Regenerate(res, fn.Doc)

	for _, ann := range finding.doc {
		if ann.Directive == syntax.DirectiveResponse {
			finding.Directives = append(finding.Directives, ann.Raw)
		}
	}

	r.Findings = append(r.Findings, finding)
}

// Doc returns the regenerated annotation list for a drift finding, nil for
// error findings. Used by the fix command.
func (f *Finding) Doc() []syntax.Annotation {
	return f.doc
}

func (f *Finding) Fn() *syntax.Function {
	return f.fn
}

// Text renders the human-readable report.
func (r *Report) Text() string {
	var b strings.Builder

	fmt.Fprintf(&b, "scanned %v handlers under %v\n", r.Handlers, r.Root)

	if len(r.Findings) == 0 {
		b.WriteString("annotations are in sync\n")
		return b.String()
	}

	for _, f := range r.Findings {
		fmt.Fprintf(&b, "\n%v:%v %v\n", f.File, f.Line, f.Function)

		if f.Error != "" {
			fmt.Fprintf(&b, "  error: %v\n", f.Error)
			continue
		}

		if len(f.Added) > 0 {
			fmt.Fprintf(&b, "  undeclared: %v\n", strings.Join(f.Added, ", "))
		}
		if len(f.Retyped) > 0 {
			fmt.Fprintf(&b, "  retyped: %v\n", strings.Join(f.Retyped, ", "))
		}
		for _, directive := range f.Directives {
			fmt.Fprintf(&b, "  %v\n", directive)
		}
	}

	return b.String()
}
