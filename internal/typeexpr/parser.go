// Package typeexpr parses textual type expressions from model files into
// resolved type values. The grammar covers qualified names with array,
// associative-array and pointer suffixes applied left to right:
//
//	app.model.User
//	User[]          dynamic array
//	ubyte[16]       static array
//	User[string]    associative array keyed by string
//	User*           pointer
//	User[]*         pointer to dynamic array
package typeexpr

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/mirror/internal/errors"
	"github.com/toyz/mirror/pkg/mirror"
)

// Resolver resolves a type name to its declared type
type Resolver interface {
	Lookup(name string) (*mirror.Type, bool)
}

type typeNode struct {
	Parts    []string     `parser:"@Ident ( '.' @Ident )*"`
	Suffixes []suffixNode `parser:"@@*"`
}

type suffixNode struct {
	Pointer string     `parser:"@'*'"`
	Array   *arrayNode `parser:"| @@"`
}

type arrayNode struct {
	Len *int      `parser:"'[' ( @Int"`
	Key *typeNode `parser:"      | @@ )? ']'"`
}

// Parser parses and resolves type expressions
type Parser struct {
	parser *participle.Parser[typeNode]
}

// NewParser builds the type-expression parser
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Punct", Pattern: `[.\[\]*]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	return &Parser{
		parser: participle.MustBuild[typeNode](
			participle.Lexer(lex),
			participle.Elide("Whitespace"),
			participle.UseLookahead(2),
		),
	}
}

// Resolve parses a type expression and resolves every name through the
// resolver
func (p *Parser) Resolve(expr string, resolver Resolver) (*mirror.Type, error) {
	node, err := p.parser.ParseString("", expr)
	if err != nil {
		return nil, errors.Wrapf(errors.SyntaxErrorCode, err, "invalid type expression %q", expr)
	}
	return p.resolveNode(node, expr, resolver)
}

func (p *Parser) resolveNode(node *typeNode, expr string, resolver Resolver) (*mirror.Type, error) {
	name := strings.Join(node.Parts, ".")
	t, ok := resolver.Lookup(name)
	if !ok {
		return nil, errors.Newf(errors.ResolutionErrorCode, "unknown type %q in expression %q", name, expr).
			WithSuggestion("declare the type in the model file's types section or qualify it with its module")
	}

	for _, suffix := range node.Suffixes {
		switch {
		case suffix.Pointer != "":
			t = mirror.PointerTo(t)
		case suffix.Array == nil:
			// unreachable with the current grammar
		case suffix.Array.Len != nil:
			t = mirror.StaticArrayOf(t, *suffix.Array.Len)
		case suffix.Array.Key != nil:
			key, err := p.resolveNode(suffix.Array.Key, expr, resolver)
			if err != nil {
				return nil, err
			}
			t = mirror.AssocArrayOf(key, t)
		default:
			t = mirror.DynamicArrayOf(t)
		}
	}
	return t, nil
}
