package def

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer tokenizes the DEF subset. Keywords are only the section words the
// grammar needs to tell apart from names.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments run to the end of the line.
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Whitespace", Pattern: `\s+`},

	{Name: "Keyword", Pattern: `\b(END|PINS|COMPONENTS|NETS|DESIGN)\b`},

	// Numbers come before Punct so a leading minus binds to the digits.
	{Name: "Number", Pattern: `-?\d+(\.\d+)?`},

	// Names: anything up to whitespace, a semicolon or a parenthesis.
	{Name: "Ident", Pattern: `[A-Za-z_][^\s;()]*`},

	{Name: "Punct", Pattern: `[-+();]`},
})
