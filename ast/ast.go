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

/*
Package ast defines the syntax tree handed to the checkers by the parser
frontend. The tree is read-only for the whole analysis pass: no checker may
modify a Node after parsing.
*/
package ast

import "fmt"

// NodeKind is the syntactic category of a Node. The set is closed; anything
// the frontend emits that is not listed here decodes to KindUnknown and never
// matches a checker condition.
type NodeKind int

const (
	KindUnknown NodeKind = iota
	KindTranslationUnit

	// declarations
	KindFunctionDecl
	KindMethodDecl
	KindConstructorDecl
	KindDestructorDecl
	KindClassDecl
	KindStructDecl
	KindFieldDecl
	KindVarDecl
	KindParmDecl
	KindNamespaceDecl
	KindUsingDirective

	// statements
	KindCompoundStmt
	KindIfStmt
	KindWhileStmt
	KindForStmt
	KindReturnStmt
	KindBreakStmt
	KindContinueStmt
	KindDeclStmt

	// expressions
	KindCallExpr
	KindMemberRefExpr
	KindArraySubscriptExpr
	KindBinaryOperator
	KindNewExpr
	KindDeleteExpr
	KindCStyleCastExpr

	// literals
	KindIntegerLiteral
	KindFloatingLiteral
	KindStringLiteral
	KindCharacterLiteral
	KindBoolLiteral
)

var kindNames = map[NodeKind]string{
	KindUnknown:            "Unknown",
	KindTranslationUnit:    "TranslationUnit",
	KindFunctionDecl:       "FunctionDecl",
	KindMethodDecl:         "MethodDecl",
	KindConstructorDecl:    "ConstructorDecl",
	KindDestructorDecl:     "DestructorDecl",
	KindClassDecl:          "ClassDecl",
	KindStructDecl:         "StructDecl",
	KindFieldDecl:          "FieldDecl",
	KindVarDecl:            "VarDecl",
	KindParmDecl:           "ParmDecl",
	KindNamespaceDecl:      "NamespaceDecl",
	KindUsingDirective:     "UsingDirective",
	KindCompoundStmt:       "CompoundStmt",
	KindIfStmt:             "IfStmt",
	KindWhileStmt:          "WhileStmt",
	KindForStmt:            "ForStmt",
	KindReturnStmt:         "ReturnStmt",
	KindBreakStmt:          "BreakStmt",
	KindContinueStmt:       "ContinueStmt",
	KindDeclStmt:           "DeclStmt",
	KindCallExpr:           "CallExpr",
	KindMemberRefExpr:      "MemberRefExpr",
	KindArraySubscriptExpr: "ArraySubscriptExpr",
	KindBinaryOperator:     "BinaryOperator",
	KindNewExpr:            "NewExpr",
	KindDeleteExpr:         "DeleteExpr",
	KindCStyleCastExpr:     "CStyleCastExpr",
	KindIntegerLiteral:     "IntegerLiteral",
	KindFloatingLiteral:    "FloatingLiteral",
	KindStringLiteral:      "StringLiteral",
	KindCharacterLiteral:   "CharacterLiteral",
	KindBoolLiteral:        "BoolLiteral",
}

func (k NodeKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// IsLiteral reports whether k is one of the literal kinds. Checkers use this
// to recognize initializers in a declaration's child list.
func (k NodeKind) IsLiteral() bool {
	switch k {
	case KindIntegerLiteral, KindFloatingLiteral, KindStringLiteral,
		KindCharacterLiteral, KindBoolLiteral:
		return true
	}
	return false
}

// IsTerminator reports whether k ends normal fallthrough within its enclosing
// block (return, break, continue).
func (k NodeKind) IsTerminator() bool {
	switch k {
	case KindReturnStmt, KindBreakStmt, KindContinueStmt:
		return true
	}
	return false
}

// Location is a 1-based source position. The root node of a tree carries no
// meaningful position.
type Location struct {
	Filename string `json:"filename"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.Filename, l.Line, l.Column)
}

// Node is one syntactic construct. Children are ordered as they appear in the
// source; positions are monotonically non-decreasing along a pre-order walk of
// sibling sequences, which the snippet lookups rely on.
type Node struct {
	Kind          NodeKind
	Spelling      string
	TypeSignature string
	Location      Location
	Children      []*Node

	IsDefinition  bool
	IsDeclaration bool
	IsVirtual     bool
	IsConst       bool
	IsStatic      bool
}

// Tree is the root node plus the original source text and originating
// filename. It is owned by a single analysis request and must be discarded
// after the pipeline returns.
type Tree struct {
	Root       *Node
	SourceCode string
	Filename   string
}
