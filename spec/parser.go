// Copyright (c) 2026 Silvano DAL ZILIO
//
// MIT License

package spec

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// specLexer defines the lexical structure of sum-of-minterms files.
var specLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `(#|//)[^\n]*`},
	{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_]*`},
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Punct", Pattern: `[=+(),]`},
	{Name: "EOL", Pattern: `\r?\n`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Grammar AST. One function per line; each line sums one or more terms, a
// term being an ON minterm list m(...) or a don't-care list d(...). Line
// breaks are elided: a new declaration starts at the next Ident "=" pair.
type specFile struct {
	Lines []*specLine `@@*`
}

type specLine struct {
	Name  string      `@Ident "="`
	Terms []*specTerm `@@ ("+" @@)*`
}

type specTerm struct {
	Kind    string `@("m" | "d")`
	Indices []int  `"(" (@Int ("," @Int)*)? ")"`
}

// Parser parses sum-of-minterms specification files.
type Parser struct {
	parser *participle.Parser[specFile]
}

// NewParser builds a parser instance for the specification format.
func NewParser() (*Parser, error) {
	parser, err := participle.Build[specFile](
		participle.Lexer(specLexer),
		participle.Elide("Comment", "Whitespace", "EOL"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build parser: %w", err)
	}
	return &Parser{parser: parser}, nil
}

// Parse reads a specification from r.
func (p *Parser) Parse(r io.Reader) (*File, error) {
	ast, err := p.parser.Parse("", r)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return fromAST(ast)
}

// ParseString reads a specification from a string.
func (p *Parser) ParseString(input string) (*File, error) {
	ast, err := p.parser.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}
	return fromAST(ast)
}

// ParseFile reads a specification from a file path.
func (p *Parser) ParseFile(filename string) (*File, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()
	return p.Parse(file)
}

func fromAST(ast *specFile) (*File, error) {
	res := &File{}
	seen := make(map[string]bool)
	for _, line := range ast.Lines {
		if seen[line.Name] {
			return nil, fmt.Errorf("duplicate function %q", line.Name)
		}
		seen[line.Name] = true
		f := Func{Name: line.Name}
		for _, term := range line.Terms {
			switch term.Kind {
			case "m":
				f.On = append(f.On, term.Indices...)
			case "d":
				f.DC = append(f.DC, term.Indices...)
			}
		}
		f.On = normalize(f.On)
		f.DC = normalize(f.DC)
		res.Funcs = append(res.Funcs, f)
	}
	if len(res.Funcs) == 0 {
		return nil, fmt.Errorf("specification declares no function")
	}
	return res, nil
}
