package def

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/participle/v2"
)

// Parser reads designs and net lists.
type Parser struct {
	design *participle.Parser[File]
	nets   *participle.Parser[NetsFile]
}

// NewParser builds both grammars.
func NewParser() (*Parser, error) {
	design, err := participle.Build[File](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("def: failed to build design parser: %w", err)
	}
	nets, err := participle.Build[NetsFile](
		participle.Lexer(Lexer),
		participle.Elide("Comment", "Whitespace"),
		participle.UseLookahead(2),
	)
	if err != nil {
		return nil, fmt.Errorf("def: failed to build nets parser: %w", err)
	}

	return &Parser{design: design, nets: nets}, nil
}

// Parse reads a design from r. name is used in error positions.
func (p *Parser) Parse(name string, r io.Reader) (*Design, error) {
	f, err := p.design.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("def: parse error: %w", err)
	}

	return newDesign(f), nil
}

// ParseString reads a design from a string.
func (p *Parser) ParseString(input string) (*Design, error) {
	f, err := p.design.ParseString("", input)
	if err != nil {
		return nil, fmt.Errorf("def: parse error: %w", err)
	}

	return newDesign(f), nil
}

// ParseFile reads the design stored at filename.
func (p *Parser) ParseFile(filename string) (*Design, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("def: failed to open file: %w", err)
	}
	defer file.Close()

	return p.Parse(filename, file)
}

// ParseNets reads a net list from r and returns its conn_in → conn_out links.
func (p *Parser) ParseNets(name string, r io.Reader) (map[string]string, error) {
	f, err := p.nets.Parse(name, r)
	if err != nil {
		return nil, fmt.Errorf("def: parse error: %w", err)
	}

	return Links(f)
}

// ParseNetsFile reads the net list stored at filename.
func (p *Parser) ParseNetsFile(filename string) (map[string]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("def: failed to open file: %w", err)
	}
	defer file.Close()

	return p.ParseNets(filename, file)
}
