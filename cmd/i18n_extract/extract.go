// Copyright 2025, 4423 and the portfolio contributors
// SPDX-License-Identifier: AGPL-3.0-only

package main

import (
	"go/ast"
	"go/constant"
	"go/token"
	"go/types"
	"path/filepath"

	"golang.org/x/tools/go/packages"
)

// key identifies a gettext entry. plural is empty for singular entries.
type key struct {
	ctx    string
	id     string
	plural string
}

type ref struct {
	file string
	line int
}

// extractor collects message references for the files of one package.
type extractor struct {
	refs     map[key][]ref
	root     string
	fset     *token.FileSet
	info     *types.Info
	i18nPkgs map[string]struct{}
}

// extractRefs walks every file of pkgs and returns the msgids passed to the
// i18n translation helpers, with their source positions relative to root.
func extractRefs(pkgs []*packages.Package, root string, i18nPkgs map[string]struct{}) map[key][]ref {
	refs := map[key][]ref{}

	for _, p := range pkgs {
		if p.TypesInfo == nil {
			continue
		}

		e := &extractor{
			refs:     refs,
			root:     root,
			fset:     p.Fset,
			info:     p.TypesInfo,
			i18nPkgs: i18nPkgs,
		}

		for _, f := range p.Syntax {
			ast.Inspect(f, func(n ast.Node) bool {
				if call, ok := n.(*ast.CallExpr); ok {
					e.handleCall(call)
				}

				return true
			})
		}
	}

	return refs
}

// findI18nPkgPaths returns the paths of packages named i18n that define a
// string-based MsgKey type, however they are imported.
func findI18nPkgPaths(pkgs []*packages.Package) map[string]struct{} {
	out := make(map[string]struct{})

	for _, p := range pkgs {
		if p.Name != "i18n" || p.Types == nil {
			continue
		}

		tn, ok := p.Types.Scope().Lookup("MsgKey").(*types.TypeName)
		if !ok {
			continue
		}

		if basic, ok := tn.Type().Underlying().(*types.Basic); ok && basic.Kind() == types.String {
			out[p.PkgPath] = struct{}{}
		}
	}

	return out
}

// constString evaluates expr to a constant string, covering literals,
// named constants and constant concatenations.
func constString(info *types.Info, expr ast.Expr) (string, bool) {
	tv, ok := info.Types[expr]
	if !ok || tv.Value == nil || tv.Value.Kind() != constant.String {
		return "", false
	}

	return constant.StringVal(tv.Value), true
}

func (e *extractor) isMsgKey(t types.Type) bool {
	named, ok := t.(*types.Named)
	if !ok || named.Obj().Pkg() == nil {
		return false
	}

	_, ok = e.i18nPkgs[named.Obj().Pkg().Path()]

	return ok && named.Obj().Name() == "MsgKey"
}

// argument positions of each translation helper: context, msgid, plural.
// -1 marks an argument the helper does not take.
var helperArgs = map[string][3]int{
	"Tr":   {-1, 1, -1},
	"TrC":  {1, 2, -1},
	"TrN":  {-1, 1, 2},
}

func (e *extractor) handleCall(x *ast.CallExpr) {
	// i18n.MsgKey("...") conversions.
	if tv, ok := e.info.Types[x.Fun]; ok && tv.IsType() {
		if len(x.Args) == 1 && e.isMsgKey(tv.Type) {
			if msg, ok := constString(e.info, x.Args[0]); ok {
				e.addRef(x.Args[0].Pos(), msg, "", "")
			}
		}

		return
	}

	sel, ok := x.Fun.(*ast.SelectorExpr)
	if !ok {
		return
	}

	fn, ok := e.info.Uses[sel.Sel].(*types.Func)
	if !ok || fn.Pkg() == nil {
		return
	}

	if _, ok := e.i18nPkgs[fn.Pkg().Path()]; !ok {
		return
	}

	pos, ok := helperArgs[fn.Name()]
	if !ok {
		return
	}

	var parts [3]string

	for i, idx := range pos {
		if idx < 0 {
			continue
		}

		if idx >= len(x.Args) {
			return
		}

		s, ok := constString(e.info, x.Args[idx])
		if !ok {
			return
		}

		parts[i] = s
	}

	e.addRef(x.Args[pos[1]].Pos(), parts[1], parts[0], parts[2])
}

func (e *extractor) addRef(pos token.Pos, msg, ctx, plural string) {
	p := e.fset.Position(pos)

	file := p.Filename
	if rel, err := filepath.Rel(e.root, file); err == nil {
		file = rel
	}

	k := key{ctx: ctx, id: msg, plural: plural}
	e.refs[k] = append(e.refs[k], ref{file: filepath.ToSlash(file), line: p.Line})
}
