// Package javaparse parses Java source into a small compilation unit model
// using the tree-sitter Java grammar.
// Only type declarations at the top of the file and their direct fields and
// methods are modeled.
package javaparse

import (
	"context"
	"errors"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

type TypeKind string

const (
	KindClass      TypeKind = "class"
	KindInterface  TypeKind = "interface"
	KindEnum       TypeKind = "enum"
	KindRecord     TypeKind = "record"
	KindAnnotation TypeKind = "annotation"
)

var typeKinds = map[string]TypeKind{ //nolint:gochecknoglobals
	"class_declaration":           KindClass,
	"interface_declaration":       KindInterface,
	"enum_declaration":            KindEnum,
	"record_declaration":          KindRecord,
	"annotation_type_declaration": KindAnnotation,
}

type CompilationUnit struct {
	Types []*TypeDeclaration
}

type TypeDeclaration struct {
	Kind    TypeKind
	Name    string
	Fields  []*FieldDeclaration
	Methods []*MethodDeclaration
}

// FieldDeclaration is one field statement. `int x, y;` has two declarators.
type FieldDeclaration struct {
	Type        string
	Declarators []*Declarator
}

type Declarator struct {
	Name string
	// Dimensions holds brackets written after the name, e.g. "[]" for `int a[]`.
	Dimensions string
}

type MethodDeclaration struct {
	Name       string
	Parameters []*Parameter
}

type Parameter struct {
	Type    string
	Name    string
	Varargs bool
}

// SyntaxError is returned when the source does not conform to the grammar.
type SyntaxError struct {
	Line    int
	Column  int
	Message string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Line, e.Column)
}

var errNoTree = errors.New("the parser returned no syntax tree")

// Parse parses src as a Java compilation unit.
// A *SyntaxError is returned if the source has any syntax error.
func Parse(ctx context.Context, src []byte) (*CompilationUnit, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parse Java source: %w", err)
	}
	if tree == nil {
		return nil, errNoTree
	}
	defer tree.Close()
	root := tree.RootNode()
	if root.HasError() {
		return nil, findSyntaxError(root, src)
	}
	p := &unitParser{src: src}
	return p.unit(root)
}

func findSyntaxError(n *sitter.Node, src []byte) error {
	if bad := firstBadNode(n); bad != nil {
		pt := bad.StartPoint()
		msg := "syntax error"
		if bad.IsMissing() {
			msg = fmt.Sprintf("missing %q", bad.Type())
		} else if s := strings.TrimSpace(bad.Content(src)); s != "" && len(s) <= 40 {
			msg = fmt.Sprintf("syntax error near %q", s)
		}
		return &SyntaxError{
			Line:    int(pt.Row) + 1,
			Column:  int(pt.Column) + 1,
			Message: msg,
		}
	}
	return &SyntaxError{Line: 1, Column: 1, Message: "syntax error"}
}

func firstBadNode(n *sitter.Node) *sitter.Node {
	if n.IsMissing() || n.Type() == "ERROR" {
		return n
	}
	if !n.HasError() {
		return nil
	}
	for i := range int(n.ChildCount()) {
		if bad := firstBadNode(n.Child(i)); bad != nil {
			return bad
		}
	}
	return nil
}

type unitParser struct {
	src []byte
}

func (p *unitParser) text(n *sitter.Node) string {
	if n == nil {
		return ""
	}
	return strings.Join(strings.Fields(n.Content(p.src)), " ")
}

// topLevelNodes are the named nodes allowed directly under the root besides
// type declarations. The grammar also accepts statements there, which a
// compilation unit can't contain.
var topLevelNodes = map[string]struct{}{ //nolint:gochecknoglobals
	"package_declaration": {},
	"import_declaration":  {},
	"module_declaration":  {},
	"line_comment":        {},
	"block_comment":       {},
	"comment":             {},
}

func (p *unitParser) unit(root *sitter.Node) (*CompilationUnit, error) {
	cu := &CompilationUnit{}
	for i := range int(root.NamedChildCount()) {
		child := root.NamedChild(i)
		if kind, ok := typeKinds[child.Type()]; ok {
			cu.Types = append(cu.Types, p.typeDeclaration(child, kind))
			continue
		}
		if _, ok := topLevelNodes[child.Type()]; ok {
			continue
		}
		pt := child.StartPoint()
		return nil, &SyntaxError{
			Line:    int(pt.Row) + 1,
			Column:  int(pt.Column) + 1,
			Message: fmt.Sprintf("unexpected %q", child.Type()),
		}
	}
	return cu, nil
}

func (p *unitParser) typeDeclaration(n *sitter.Node, kind TypeKind) *TypeDeclaration {
	td := &TypeDeclaration{
		Kind: kind,
		Name: p.text(n.ChildByFieldName("name")),
	}
	if body := n.ChildByFieldName("body"); body != nil {
		p.members(td, body)
	}
	return td
}

func (p *unitParser) members(td *TypeDeclaration, body *sitter.Node) {
	for i := range int(body.NamedChildCount()) {
		child := body.NamedChild(i)
		switch child.Type() {
		case "field_declaration", "constant_declaration":
			td.Fields = append(td.Fields, p.field(child))
		case "method_declaration":
			td.Methods = append(td.Methods, p.method(child))
		case "enum_body_declarations":
			p.members(td, child)
		}
	}
}

func (p *unitParser) field(n *sitter.Node) *FieldDeclaration {
	fd := &FieldDeclaration{
		Type: p.text(n.ChildByFieldName("type")),
	}
	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		fd.Declarators = append(fd.Declarators, &Declarator{
			Name:       p.text(child.ChildByFieldName("name")),
			Dimensions: p.text(child.ChildByFieldName("dimensions")),
		})
	}
	return fd
}

func (p *unitParser) method(n *sitter.Node) *MethodDeclaration {
	md := &MethodDeclaration{
		Name: p.text(n.ChildByFieldName("name")),
	}
	params := n.ChildByFieldName("parameters")
	if params == nil {
		return md
	}
	for i := range int(params.NamedChildCount()) {
		child := params.NamedChild(i)
		switch child.Type() {
		case "formal_parameter":
			md.Parameters = append(md.Parameters, &Parameter{
				Type: p.text(child.ChildByFieldName("type")) + p.text(child.ChildByFieldName("dimensions")),
				Name: p.text(child.ChildByFieldName("name")),
			})
		case "spread_parameter":
			md.Parameters = append(md.Parameters, p.spread(child))
		}
	}
	return md
}

// spread handles varargs parameters, which have no named fields in the grammar.
func (p *unitParser) spread(n *sitter.Node) *Parameter {
	param := &Parameter{Varargs: true}
	for i := range int(n.NamedChildCount()) {
		child := n.NamedChild(i)
		switch child.Type() {
		case "modifiers", "marker_annotation", "annotation":
		case "variable_declarator":
			param.Name = p.text(child.ChildByFieldName("name"))
		default:
			if param.Type == "" {
				param.Type = p.text(child)
			}
		}
	}
	return param
}
