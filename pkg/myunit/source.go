package myunit

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
)

// site is the location of an assertion call in a test function.
type site struct {
	path string // full path as recorded in the binary
	file string // base name, used in diagnostics
	line int
	fn   string
}

// callerSite reports the caller skip frames above its own caller.
func callerSite(skip int) site {
	pc, path, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return site{file: "???", fn: "???"}
	}
	fn := "???"
	if f := runtime.FuncForPC(pc); f != nil {
		fn = shortFuncName(f.Name())
	}
	return site{path: path, file: filepath.Base(path), line: line, fn: fn}
}

// args returns the source text of each argument of the call to name, taking
// nargs arguments, that encloses the site's line. ok is false when the
// source cannot be read or no such call is found.
func (s site) args(name string, nargs int) ([]string, bool) {
	if s.path == "" {
		return nil, false
	}
	return sources.callArgs(s.path, s.line, name, nargs)
}

// shortFuncName strips the import path and package from a runtime function
// name: "example.com/m/pkg.testFoo" becomes "testFoo" and
// "example.com/m/pkg.(*T).run.func1" becomes "(*T).run.func1".
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// sourceFile is a parsed Go file kept for later lookups.
type sourceFile struct {
	fset *token.FileSet
	file *ast.File
	src  []byte
	err  error
}

// sourceCache parses each file at most once per process.
//
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type sourceCache struct {
	mu    sync.Mutex
	files map[string]*sourceFile
}

var sources = &sourceCache{files: make(map[string]*sourceFile)}

func (c *sourceCache) load(path string) *sourceFile {
	c.mu.Lock()
	defer c.mu.Unlock()

	if sf, ok := c.files[path]; ok {
		return sf
	}
	sf := parseSource(path)
	c.files[path] = sf
	return sf
}

func parseSource(path string) *sourceFile {
	src, err := os.ReadFile(path)
	if err != nil {
		return &sourceFile{err: fmt.Errorf("read source: %w", err)}
	}
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, src, parser.SkipObjectResolution)
	if err != nil {
		return &sourceFile{err: fmt.Errorf("parse source: %w", err)}
	}
	return &sourceFile{fset: fset, file: file, src: src}
}

// callArgs finds the outermost call to name with exactly nargs arguments
// whose extent covers line, and returns its arguments as source text with
// whitespace collapsed. Calls with another arity, such as a method
// v.Int() used as an operand, never match.
func (c *sourceCache) callArgs(path string, line int, name string, nargs int) ([]string, bool) {
	sf := c.load(path)
	if sf.err != nil {
		return nil, false
	}

	var best *ast.CallExpr
	ast.Inspect(sf.file, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok || len(call.Args) != nargs || calleeName(call.Fun) != name {
			return true
		}
		start := sf.fset.Position(call.Pos()).Line
		end := sf.fset.Position(call.End()).Line
		if line < start || line > end {
			return true
		}
		if best == nil || call.End()-call.Pos() > best.End()-best.Pos() {
			best = call
		}
		return true
	})
	if best == nil {
		return nil, false
	}

	args := make([]string, len(best.Args))
	for i, arg := range best.Args {
		from := sf.fset.Position(arg.Pos()).Offset
		to := sf.fset.Position(arg.End()).Offset
		args[i] = strings.Join(strings.Fields(string(sf.src[from:to])), " ")
	}
	return args, true
}

// calleeName returns the bare function name of a call target, looking
// through package selectors and explicit instantiation.
func calleeName(fun ast.Expr) string {
	switch f := fun.(type) {
	case *ast.Ident:
		return f.Name
	case *ast.SelectorExpr:
		return f.Sel.Name
	case *ast.IndexExpr:
		return calleeName(f.X)
	case *ast.IndexListExpr:
		return calleeName(f.X)
	default:
		return ""
	}
}
