// Package annotations parses annotation literals from model files into
// tagged annotation values. Supported literal forms:
//
//	"something"     string value
//	42, -7          integer value
//	3.5             floating-point value
//	true, false     boolean value
//	Attr(42, "x")   composite value with ordered arguments
//	Tagged          bare type literal
package annotations

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/toyz/mirror/internal/errors"
	"github.com/toyz/mirror/pkg/mirror"
)

type valueNode struct {
	Str       *string        `parser:"@String"`
	Float     *float64       `parser:"| @Float"`
	Int       *int64         `parser:"| @Int"`
	Composite *compositeNode `parser:"| @@"`
	Ident     *string        `parser:"| @Ident"`
}

type compositeNode struct {
	Shape string      `parser:"@Ident '('"`
	Args  []valueNode `parser:"( @@ ( ',' @@ )* )? ')'"`
}

// Parser parses annotation literals
type Parser struct {
	parser *participle.Parser[valueNode]
}

// NewParser builds the annotation-literal parser
func NewParser() *Parser {
	lex := lexer.MustSimple([]lexer.SimpleRule{
		{Name: "String", Pattern: `"(\\"|[^"])*"`},
		{Name: "Float", Pattern: `[-+]?[0-9]+\.[0-9]+`},
		{Name: "Int", Pattern: `[-+]?[0-9]+`},
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
		{Name: "Punct", Pattern: `[(),]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	return &Parser{
		parser: participle.MustBuild[valueNode](
			participle.Lexer(lex),
			participle.Elide("Whitespace"),
			participle.UseLookahead(2),
		),
	}
}

// Parse converts an annotation literal into its annotation value
func (p *Parser) Parse(literal string) (mirror.Annotation, error) {
	node, err := p.parser.ParseString("", literal)
	if err != nil {
		return mirror.Annotation{}, errors.Wrapf(errors.SyntaxErrorCode, err, "invalid annotation literal %q", literal)
	}
	return convert(node)
}

func convert(node *valueNode) (mirror.Annotation, error) {
	switch {
	case node.Str != nil:
		unquoted, err := strconv.Unquote(*node.Str)
		if err != nil {
			return mirror.Annotation{}, errors.Wrapf(errors.SyntaxErrorCode, err, "invalid string literal %s", *node.Str)
		}
		return mirror.StringAnnotation(unquoted), nil
	case node.Float != nil:
		return mirror.FloatAnnotation(*node.Float), nil
	case node.Int != nil:
		return mirror.IntAnnotation(*node.Int), nil
	case node.Composite != nil:
		args := make([]mirror.Annotation, 0, len(node.Composite.Args))
		for i := range node.Composite.Args {
			arg, err := convert(&node.Composite.Args[i])
			if err != nil {
				return mirror.Annotation{}, err
			}
			args = append(args, arg)
		}
		return mirror.CompositeAnnotation(node.Composite.Shape, args...), nil
	case node.Ident != nil:
		switch *node.Ident {
		case "true":
			return mirror.BoolAnnotation(true), nil
		case "false":
			return mirror.BoolAnnotation(false), nil
		}
		return mirror.TypeLiteralAnnotation(*node.Ident), nil
	default:
		return mirror.Annotation{}, errors.New(errors.SyntaxErrorCode, "empty annotation literal")
	}
}
