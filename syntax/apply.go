package syntax

import (
	"fmt"
	"slices"
	"strings"
)

// Edit pairs a function with its replacement doc annotation list.
type Edit struct {
	Fn  *Function
	Doc []Annotation
}

func renderDoc(doc []Annotation) string {
	lines := make([]string, 0, len(doc))

	for _, ann := range doc {
		lines = append(lines, ann.Raw)
	}

	return strings.Join(lines, "\n")
}

// Rewrite replaces fn's doc comment inside src with the rendered annotation
// list and returns the new file content. When the function had no doc
// comment, the block is inserted directly above the declaration.
func Rewrite(src []byte, fn *Function, doc []Annotation) ([]byte, error) {
	if fn.docStart < 0 || fn.docEnd > len(src) || fn.docStart > fn.docEnd {
		return nil, fmt.Errorf("stale source offsets for %v", fn.Name)
	}

	block := renderDoc(doc)

	if !fn.hasDoc {
		block += "\n"
	}

	out := make([]byte, 0, len(src)+len(block))
	out = append(out, src[:fn.docStart]...)
	out = append(out, block...)
	out = append(out, src[fn.docEnd:]...)

	return out, nil
}

// ApplyAll rewrites several functions of one file. Edits are applied bottom
// up so the recorded offsets of earlier functions stay valid.
func ApplyAll(file *File, edits []Edit) ([]byte, error) {
	ordered := slices.Clone(edits)

	slices.SortFunc(ordered, func(a, b Edit) int {
		return b.Fn.docStart - a.Fn.docStart
	})

	src := file.Src

	for _, edit := range ordered {
		out, err := Rewrite(src, edit.Fn, edit.Doc)

		if err != nil {
			return nil, err
		}
		src = out
	}

	return src, nil
}
