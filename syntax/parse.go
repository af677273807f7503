package syntax

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// ParseFile builds the flat function records for one source file. src may be
// nil, in which case the file is read from disk.
func ParseFile(path string, src []byte) (*File, error) {
	if src == nil {
		bytes, err := os.ReadFile(path)

		if err != nil {
			return nil, fmt.Errorf("unable to read file %v: %w", path, err)
		}
		src = bytes
	}

	fset := token.NewFileSet()
	root, err := parser.ParseFile(fset, path, src, parser.ParseComments)

	if err != nil {
		return nil, fmt.Errorf("unable to parse %v: %w", path, err)
	}

	out := &File{
		Path: path,
		Src:  src,
	}

	for _, decl := range root.Decls {
		fn, ok := decl.(*ast.FuncDecl)

		if !ok {
			continue
		}

		out.Functions = append(out.Functions, convertFunc(fset, fn, path))
	}

	return out, nil
}

// LoadDir parses every file under root whose name ends in suffix. Hidden,
// underscore-prefixed and vendor directories are skipped.
func LoadDir(root, suffix string) ([]*File, error) {
	var files []*File

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()

		if d.IsDir() {
			if path != root && (name == "vendor" || strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")) {
				return filepath.SkipDir
			}
			return nil
		}

		if !strings.HasSuffix(name, suffix) {
			return nil
		}

		file, err := ParseFile(path, nil)
		if err != nil {
			return err
		}

		files = append(files, file)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return files, nil
}

func convertFunc(fset *token.FileSet, fn *ast.FuncDecl, path string) Function {
	out := Function{
		Name: fn.Name.Name,
		File: path,
		Line: fset.Position(fn.Pos()).Line,
	}

	if results := fn.Type.Results; results != nil && len(results.List) == 1 && len(results.List[0].Names) == 0 {
		out.Result = types.ExprString(results.List[0].Type)
	}

	if fn.Doc != nil {
		out.hasDoc = true
		out.docStart = fset.Position(fn.Doc.Pos()).Offset
		out.docEnd = fset.Position(fn.Doc.End()).Offset

		for _, comment := range fn.Doc.List {
			out.Doc = append(out.Doc, parseAnnotation(comment.Text))
		}
	} else {
		// insertion point for a fresh doc comment
		out.docStart = fset.Position(fn.Pos()).Offset
		out.docEnd = out.docStart
	}

	if fn.Body != nil {
		for _, stmt := range fn.Body.List {
			ret, ok := stmt.(*ast.ReturnStmt)

			if !ok {
				continue
			}

			site := Return{Line: fset.Position(ret.Pos()).Line}

			if len(ret.Results) > 0 {
				site.Expr = convertExpr(ret.Results[0])
			}

			out.Returns = append(out.Returns, site)
		}
	}

	return out
}

// convertExpr flattens an ast expression into the record form. Children keep
// source order so a depth-first payload scan sees constructions in the order
// they appear.
func convertExpr(expr ast.Expr) *Expr {
	switch v := expr.(type) {
	case *ast.CallExpr:
		out := &Expr{Kind: KindCall, Name: callName(v.Fun)}
		for _, arg := range v.Args {
			out.Args = append(out.Args, *convertExpr(arg))
		}
		return out

	case *ast.CompositeLit:
		out := &Expr{Kind: KindComposite, Name: litTypeName(v.Type)}
		for _, elt := range v.Elts {
			out.Args = append(out.Args, *convertExpr(elt))
		}
		return out

	case *ast.KeyValueExpr:
		return &Expr{Args: []Expr{*convertExpr(v.Value)}}

	case *ast.ParenExpr:
		return convertExpr(v.X)

	case *ast.UnaryExpr:
		return convertExpr(v.X)

	case *ast.StarExpr:
		return convertExpr(v.X)

	case *ast.SelectorExpr:
		return &Expr{Name: v.Sel.Name}

	case *ast.Ident:
		return &Expr{Name: v.Name}

	default:
		return &Expr{}
	}
}

func callName(fun ast.Expr) string {
	switch v := fun.(type) {
	case *ast.SelectorExpr:
		return v.Sel.Name
	case *ast.Ident:
		return v.Name
	default:
		return ""
	}
}

func litTypeName(expr ast.Expr) string {
	switch v := expr.(type) {
	case *ast.Ident:
		return v.Name
	case *ast.SelectorExpr:
		return v.Sel.Name
	case *ast.ArrayType:
		return litTypeName(v.Elt)
	case *ast.StarExpr:
		return litTypeName(v.X)
	default:
		return ""
	}
}
