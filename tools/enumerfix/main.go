// Package main rewrites enumer-generated files to build their errors with
// cockroachdb/errors instead of fmt.
package main

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/ast/astutil"
)

const errorsImport = "github.com/cockroachdb/errors"

// ErrUsage indicates incorrect usage of the tool.
var ErrUsage = errors.New("usage: enumerfix <file> [file...]")

func main() {
	if err := run(os.Args, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run fixes every file named in args[1:], reporting the ones it changed.
func run(args []string, out io.Writer) error {
	if len(args) < 2 {
		return ErrUsage
	}

	for _, path := range args[1:] {
		changed, err := fixFile(path)
		if err != nil {
			return err
		}

		if changed {
			fmt.Fprintf(out, "enumerfix: fixed %s\n", path)
		}
	}

	return nil
}

// fixFile rewrites path in place, keeping its permissions. Files that need
// no change are left untouched.
func fixFile(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, errors.Wrapf(err, "stat %s", path)
	}

	//nolint:gosec // G304: the path is a generated file named on the command line
	src, err := os.ReadFile(path)
	if err != nil {
		return false, errors.Wrapf(err, "reading %s", path)
	}

	fixed, changed, err := fixSource(path, src)
	if err != nil || !changed {
		return false, err
	}

	if err := os.WriteFile(path, fixed, info.Mode().Perm()); err != nil {
		return false, errors.Wrapf(err, "writing %s", path)
	}

	return true, nil
}

// fixSource replaces fmt.Errorf calls with errors.Newf, drops the fmt import
// when nothing else uses it and imports cockroachdb/errors.
func fixSource(filename string, src []byte) ([]byte, bool, error) {
	fset := token.NewFileSet()

	file, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, false, errors.Wrapf(err, "parsing %s", filename)
	}

	rewrites := 0

	ast.Inspect(file, func(n ast.Node) bool {
		sel, ok := n.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Errorf" {
			return true
		}

		pkg, ok := sel.X.(*ast.Ident)
		if !ok || pkg.Name != "fmt" {
			return true
		}

		pkg.Name = "errors"
		sel.Sel.Name = "Newf"
		rewrites++

		return true
	})

	if rewrites == 0 {
		return src, false, nil
	}

	if !astutil.UsesImport(file, "fmt") {
		astutil.DeleteImport(fset, file, "fmt")
	}

	astutil.AddImport(fset, file, errorsImport)

	var buf bytes.Buffer
	if err := format.Node(&buf, fset, file); err != nil {
		return nil, false, errors.Wrapf(err, "formatting %s", filename)
	}

	return buf.Bytes(), true, nil
}
