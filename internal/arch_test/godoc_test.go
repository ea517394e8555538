package arch_test

import (
	"go/ast"
	"go/parser"
	"go/token"
	"path/filepath"
	"strings"
	"testing"
)

// TestExportedSymbolsHaveGoDoc verifies that every exported type, function,
// method, var, and const in internal packages has a GoDoc comment starting
// with the symbol name. Grouped const blocks may instead carry a block
// comment or inline comments, as the shell enum does.
func TestExportedSymbolsHaveGoDoc(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)
	for _, pkg := range internalPackages(t) {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()

			fset, files := parseFiles(t, filepath.Join(dir, pkg), parser.ParseComments)
			for path, node := range files {
				rel := filepath.Join(pkg, filepath.Base(path))
				for _, decl := range node.Decls {
					switch d := decl.(type) {
					case *ast.GenDecl:
						checkGenDecl(t, fset, d, rel)
					case *ast.FuncDecl:
						checkFuncDecl(t, fset, d, rel)
					}
				}
			}
		})
	}
}

func checkGenDecl(t *testing.T, fset *token.FileSet, d *ast.GenDecl, rel string) {
	t.Helper()

	grouped := len(d.Specs) > 1
	blockDoc := strings.TrimSpace(docText(d.Doc)) != ""

	for _, spec := range d.Specs {
		switch s := spec.(type) {
		case *ast.TypeSpec:
			if s.Name.IsExported() && !hasValidGoDoc(docText(s.Doc, d.Doc), s.Name.Name) {
				t.Errorf("%s:%d: exported type %s has no GoDoc comment",
					rel, fset.Position(s.Pos()).Line, s.Name.Name)
			}
		case *ast.ValueSpec:
			for _, name := range s.Names {
				if !name.IsExported() {
					continue
				}
				if grouped {
					inline := s.Comment != nil && strings.TrimSpace(s.Comment.Text()) != ""
					if blockDoc || inline || hasValidGoDoc(docText(s.Doc), name.Name) {
						continue
					}
				} else if hasValidGoDoc(docText(s.Doc, d.Doc), name.Name) {
					continue
				}
				t.Errorf("%s:%d: exported %s %s has no GoDoc comment",
					rel, fset.Position(name.Pos()).Line, d.Tok, name.Name)
			}
		}
	}
}

func checkFuncDecl(t *testing.T, fset *token.FileSet, d *ast.FuncDecl, rel string) {
	t.Helper()

	if !d.Name.IsExported() {
		return
	}
	// Exported methods on unexported types are not public API.
	if d.Recv != nil && !isExportedReceiver(d.Recv) {
		return
	}
	if !hasValidGoDoc(docText(d.Doc), d.Name.Name) {
		t.Errorf("%s:%d: exported %s has no GoDoc comment",
			rel, fset.Position(d.Pos()).Line, d.Name.Name)
	}
}

// hasValidGoDoc reports whether doc is non-empty and starts with the symbol
// name.
func hasValidGoDoc(doc, symbol string) bool {
	return strings.HasPrefix(strings.TrimSpace(doc), symbol)
}

func isExportedReceiver(recv *ast.FieldList) bool {
	if recv == nil || len(recv.List) == 0 {
		return false
	}
	expr := recv.List[0].Type
	if star, ok := expr.(*ast.StarExpr); ok {
		expr = star.X
	}
	ident, ok := expr.(*ast.Ident)
	return ok && ident.IsExported()
}

func TestHasValidGoDoc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		doc, symbol string
		want        bool
	}{
		{"Parse looks up a shell by name.\n", "Parse", true},
		{"looks up a shell by name.\n", "Parse", false},
		{"", "Parse", false},
		{"  \n", "Parse", false},
	}
	for _, tt := range tests {
		if got := hasValidGoDoc(tt.doc, tt.symbol); got != tt.want {
			t.Errorf("hasValidGoDoc(%q, %q) = %v, want %v", tt.doc, tt.symbol, got, tt.want)
		}
	}
}
