/*
AI-Powered Code Reviewer - A tool for static C++ code analysis
Copyright (C) 2023  Ah2022

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/

// Package parser is the boundary to the external parser frontend. It runs
// the configured AST dumper (clang -ast-dump=json by default) and decodes its
// JSON output into the ast package's tree. Parse failures surface here,
// before analysis starts; the analyzer itself never sees a broken tree.
package parser

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/golang/glog"
	"github.com/google/shlex"

	"github.com/Ah2022/AI-Powered-Code-Reviewer/ast"
)

// clangNode mirrors the subset of clang's JSON AST dump the checkers care
// about. Unknown fields are ignored.
type clangNode struct {
	Kind               string      `json:"kind"`
	Name               string      `json:"name"`
	Loc                *clangLoc   `json:"loc"`
	Type               *clangType  `json:"type"`
	Inner              []clangNode `json:"inner"`
	IsImplicit         bool        `json:"isImplicit"`
	Virtual            bool        `json:"virtual"`
	StorageClass       string      `json:"storageClass"`
	TagUsed            string      `json:"tagUsed"`
	CompleteDefinition bool        `json:"completeDefinition"`
	ReferencedDecl     *clangNode  `json:"referencedDecl"`
	NominatedNamespace *clangNode  `json:"nominatedNamespace"`
}

// clang omits file and line when they repeat the previous location, so the
// decoder carries them forward while walking the dump.
type clangLoc struct {
	File         string    `json:"file"`
	Line         int       `json:"line"`
	Col          int       `json:"col"`
	SpellingLoc  *clangLoc `json:"spellingLoc"`
	ExpansionLoc *clangLoc `json:"expansionLoc"`
}

type clangType struct {
	QualType string `json:"qualType"`
}

var kindMap = map[string]ast.NodeKind{
	"TranslationUnitDecl":    ast.KindTranslationUnit,
	"FunctionDecl":           ast.KindFunctionDecl,
	"CXXMethodDecl":          ast.KindMethodDecl,
	"CXXConstructorDecl":     ast.KindConstructorDecl,
	"CXXDestructorDecl":      ast.KindDestructorDecl,
	"FieldDecl":              ast.KindFieldDecl,
	"VarDecl":                ast.KindVarDecl,
	"ParmVarDecl":            ast.KindParmDecl,
	"NamespaceDecl":          ast.KindNamespaceDecl,
	"UsingDirectiveDecl":     ast.KindUsingDirective,
	"CompoundStmt":           ast.KindCompoundStmt,
	"IfStmt":                 ast.KindIfStmt,
	"WhileStmt":              ast.KindWhileStmt,
	"ForStmt":                ast.KindForStmt,
	"ReturnStmt":             ast.KindReturnStmt,
	"BreakStmt":              ast.KindBreakStmt,
	"ContinueStmt":           ast.KindContinueStmt,
	"DeclStmt":               ast.KindDeclStmt,
	"CallExpr":               ast.KindCallExpr,
	"CXXMemberCallExpr":      ast.KindCallExpr,
	"CXXOperatorCallExpr":    ast.KindCallExpr,
	"MemberExpr":             ast.KindMemberRefExpr,
	"ArraySubscriptExpr":     ast.KindArraySubscriptExpr,
	"BinaryOperator":         ast.KindBinaryOperator,
	"CompoundAssignOperator": ast.KindBinaryOperator,
	"CXXNewExpr":             ast.KindNewExpr,
	"CXXDeleteExpr":          ast.KindDeleteExpr,
	"CStyleCastExpr":         ast.KindCStyleCastExpr,
	"IntegerLiteral":         ast.KindIntegerLiteral,
	"FloatingLiteral":        ast.KindFloatingLiteral,
	"StringLiteral":          ast.KindStringLiteral,
	"CharacterLiteral":       ast.KindCharacterLiteral,
	"CXXBoolLiteralExpr":     ast.KindBoolLiteral,
}

func mapKind(name string) ast.NodeKind {
	if k, ok := kindMap[name]; ok {
		return k
	}
	// Unknown kinds stay in the tree but never match a checker condition.
	return ast.KindUnknown
}

// decodeState carries the sticky file and line clang's differential location
// encoding relies on.
type decodeState struct {
	file string
	line int
}

func (s *decodeState) resolve(loc *clangLoc) (string, int, int) {
	if loc == nil {
		return s.file, s.line, 0
	}
	if loc.ExpansionLoc != nil {
		loc = loc.ExpansionLoc
	} else if loc.SpellingLoc != nil {
		loc = loc.SpellingLoc
	}
	if loc.File != "" {
		s.file = loc.File
	}
	if loc.Line != 0 {
		s.line = loc.Line
	}
	return s.file, s.line, loc.Col
}

// skip resolves every location in a subtree that is dropped from the output
// tree, without producing nodes.
func (s *decodeState) skip(cn *clangNode) {
	s.resolve(cn.Loc)
	for i := range cn.Inner {
		s.skip(&cn.Inner[i])
	}
}

func (s *decodeState) convert(cn *clangNode, filename string) *ast.Node {
	file, line, col := s.resolve(cn.Loc)
	if file == "" {
		file = filename
	}
	node := &ast.Node{
		Kind:          mapKind(cn.Kind),
		Spelling:      cn.Name,
		Location:      ast.Location{Filename: file, Line: line, Column: col},
		IsVirtual:     cn.Virtual,
		IsStatic:      cn.StorageClass == "static",
		IsDeclaration: strings.HasSuffix(cn.Kind, "Decl"),
		IsDefinition:  cn.CompleteDefinition,
	}
	if cn.Type != nil {
		node.TypeSignature = cn.Type.QualType
		node.IsConst = strings.HasSuffix(strings.TrimSpace(cn.Type.QualType), "const")
	}
	if cn.Kind == "CXXRecordDecl" {
		if cn.TagUsed == "struct" {
			node.Kind = ast.KindStructDecl
		} else {
			node.Kind = ast.KindClassDecl
		}
	}
	if node.Kind == ast.KindUsingDirective && cn.NominatedNamespace != nil {
		node.Spelling = cn.NominatedNamespace.Name
	}
	for i := range cn.Inner {
		child := &cn.Inner[i]
		if child.Kind == "" || child.IsImplicit {
			// The differential encoding counts dropped nodes too, so the
			// sticky location must still advance through their subtrees.
			s.skip(child)
			continue
		}
		node.Children = append(node.Children, s.convert(child, filename))
	}
	if node.Kind == ast.KindCallExpr && node.Spelling == "" {
		node.Spelling = calleeName(cn)
	}
	return node
}

// calleeName digs the callee identifier out of a call expression: the first
// DeclRefExpr below the call, the way the frontend prints direct calls.
func calleeName(cn *clangNode) string {
	if cn.Kind == "DeclRefExpr" {
		if cn.ReferencedDecl != nil {
			return cn.ReferencedDecl.Name
		}
		return cn.Name
	}
	if cn.Kind == "MemberExpr" && cn.Name != "" {
		return cn.Name
	}
	for i := range cn.Inner {
		if name := calleeName(&cn.Inner[i]); name != "" {
			return name
		}
	}
	return ""
}

// Decode turns a frontend JSON dump into a Tree for the given file. The root
// must be a translation unit; anything else means the frontend failed.
func Decode(data []byte, filename, source string) (*ast.Tree, error) {
	var root clangNode
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("json.Unmarshal: %v", err)
	}
	if root.Kind != "TranslationUnitDecl" {
		return nil, fmt.Errorf("unexpected root node kind %q in AST dump for %s", root.Kind, filename)
	}
	state := &decodeState{file: filename}
	tree := &ast.Tree{
		Root:       state.convert(&root, filename),
		SourceCode: source,
		Filename:   filename,
	}
	return tree, nil
}

// ParseFile runs the configured frontend command on path and decodes the
// dump. The command string is split shell-style; the path is appended as the
// final argument.
func ParseFile(parserCommand, path string) (*ast.Tree, error) {
	args, err := shlex.Split(parserCommand)
	if err != nil {
		return nil, fmt.Errorf("shlex.Split(%q): %v", parserCommand, err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty parser command")
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("os.ReadFile: %v", err)
	}
	cmd := exec.Command(args[0], append(args[1:], path)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		// clang exits non-zero on diagnostics even when it still wrote a
		// usable dump; only a missing dump is fatal.
		if stdout.Len() == 0 {
			return nil, fmt.Errorf("%s: %v\n%s", args[0], err, stderr.String())
		}
		glog.Warningf("%s exited with error for %s: %v", args[0], path, err)
	}
	return Decode(stdout.Bytes(), path, string(source))
}
