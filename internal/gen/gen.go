// Package gen turns parsed rule files into Go source declaring a
// rewrite.Table.
package gen

import (
	"bytes"
	"fmt"
	"github.com/cstructs/rewrite"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"github.com/pkg/errors"
	"go/token"
	"strconv"
	"strings"
)

const generatedHeader = "// Code generated by ruletable from %s. DO NOT EDIT."

// Options control the generated file.
type Options struct {
	// Package is the package clause of the generated file.
	Package string
	// Name is the name of the declared table variable.
	Name string
	// Source names the rule file in the header comment.
	Source string
}

const (
	rewritePackage = "rewrite"
	rewritePath    = "github.com/cstructs/rewrite"
)

// Generate returns the formatted Go source for specs.
func Generate(opts Options, specs []rewrite.RuleSpec) ([]byte, error) {
	if !token.IsIdentifier(opts.Name) {
		return nil, errors.Errorf("invalid table name %q", opts.Name)
	}
	if !token.IsIdentifier(opts.Package) {
		return nil, errors.Errorf("invalid package name %q", opts.Package)
	}
	// Tables generated outside package rewrite refer to it by name.
	qualifier := ""
	if opts.Package != rewritePackage {
		qualifier = rewritePackage
	}
	decl, err := buildTableDecl(opts, qualifier, specs)
	if err != nil {
		return nil, err
	}
	decls := []dst.Decl{decl}
	if qualifier != "" {
		decls = append([]dst.Decl{importDecl(rewritePath)}, decls...)
	}
	f := &dst.File{
		Name:  dst.NewIdent(opts.Package),
		Decls: decls,
		Decs: dst.FileDecorations{
			NodeDecs: dst.NodeDecs{
				Start: dst.Decorations{fmt.Sprintf(generatedHeader, opts.Source), "\n"},
			},
		},
	}
	return printResult(f)
}

func printResult(f *dst.File) ([]byte, error) {
	res := decorator.NewRestorer()
	var out bytes.Buffer
	if err := res.Fprint(&out, f); err != nil {
		return nil, errors.Wrap(err, "printing generated table")
	}
	return out.Bytes(), nil
}

func importDecl(path string) *dst.GenDecl {
	return &dst.GenDecl{
		Tok: token.IMPORT,
		Specs: []dst.Spec{
			&dst.ImportSpec{
				Path: &dst.BasicLit{Kind: token.STRING, Value: strconv.Quote(path)},
			},
		},
		Decs: dst.GenDeclDecorations{
			NodeDecs: dst.NodeDecs{Before: dst.EmptyLine},
		},
	}
}

func buildTableDecl(opts Options, qualifier string, specs []rewrite.RuleSpec) (*dst.GenDecl, error) {
	elts := make([]dst.Expr, 0, len(specs))
	for _, spec := range specs {
		call, err := buildRuleCall(qualifier, spec)
		if err != nil {
			return nil, err
		}
		elts = append(elts, call)
	}
	lit := &dst.CompositeLit{
		Type: qualified(qualifier, "Table"),
		Elts: elts,
	}
	for _, e := range elts {
		e.Decorations().Before = dst.NewLine
		e.Decorations().After = dst.NewLine
	}
	return &dst.GenDecl{
		Tok: token.VAR,
		Specs: []dst.Spec{
			&dst.ValueSpec{
				Names:  []*dst.Ident{dst.NewIdent(opts.Name)},
				Values: []dst.Expr{lit},
			},
		},
		Decs: dst.GenDeclDecorations{
			NodeDecs: dst.NodeDecs{
				Before: dst.EmptyLine,
				Start: dst.Decorations{
					fmt.Sprintf("// %s is the rule table generated from %s.", opts.Name, opts.Source),
				},
			},
		},
	}, nil
}

func buildRuleCall(qualifier string, spec rewrite.RuleSpec) (*dst.CallExpr, error) {
	var (
		fun  string
		args []string
	)
	switch spec.Kind {
	case rewrite.KindLiteral:
		fun, args = "Literal", []string{spec.Pattern, spec.Replacement}
	case rewrite.KindNamespaced:
		fun, args = "Namespaced", []string{spec.Pattern, spec.Replacement}
	case rewrite.KindCamel:
		fun, args = "Camel", []string{spec.Pattern}
	default:
		return nil, errors.Errorf("line %d: unknown rule kind %d", spec.Line, spec.Kind)
	}
	call := &dst.CallExpr{Fun: qualified(qualifier, fun)}
	for _, a := range args {
		call.Args = append(call.Args, stringLit(a))
	}
	return call, nil
}

func qualified(qualifier, name string) dst.Expr {
	if qualifier == "" {
		return dst.NewIdent(name)
	}
	return &dst.SelectorExpr{X: dst.NewIdent(qualifier), Sel: dst.NewIdent(name)}
}

// stringLit prefers raw strings so regexps stay readable.
func stringLit(s string) *dst.BasicLit {
	value := "`" + s + "`"
	if strings.ContainsAny(s, "`\r") {
		value = strconv.Quote(s)
	}
	return &dst.BasicLit{Kind: token.STRING, Value: value}
}
