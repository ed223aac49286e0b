package controller

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/younwookim/wizzy"

// moduleImports returns every import reachable from dir through packages
// of this module, skipping test files.
func moduleImports(t *testing.T, root, dir string, seen map[string]bool, out map[string]bool) {
	t.Helper()
	if seen[dir] {
		return
	}
	seen[dir] = true

	pkgs, err := parser.ParseDir(token.NewFileSet(), dir, func(fi os.FileInfo) bool {
		return !strings.HasSuffix(fi.Name(), "_test.go")
	}, parser.ImportsOnly)
	require.NoError(t, err)

	for _, pkg := range pkgs {
		for _, f := range pkg.Files {
			for _, imp := range f.Imports {
				p := strings.Trim(imp.Path.Value, `"`)
				out[p] = true
				if rel, ok := strings.CutPrefix(p, modulePath+"/"); ok {
					moduleImports(t, root, filepath.Join(root, filepath.FromSlash(rel)), seen, out)
				}
			}
		}
	}
}

func TestController_DoesNotImportEngine(t *testing.T) {
	root, err := filepath.Abs(filepath.Join("..", "..", ".."))
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(root, "go.mod"))

	imports := make(map[string]bool)
	moduleImports(t, root, ".", make(map[string]bool), imports)

	require.Contains(t, imports, modulePath+"/internal/domain/input")
	for p := range imports {
		assert.False(t, strings.HasPrefix(p, "github.com/hajimehoshi/"), "controller reaches %s", p)
		assert.NotEqual(t, modulePath+"/internal/application/system", p)
	}
}
