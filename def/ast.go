package def

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// File is a parsed design.
type File struct {
	Sections []*Section `@@*`
}

// Section is one top-level element of a design.
type Section struct {
	Pins       *PinsSection       `  @@`
	Components *ComponentsSection `| @@`
	End        bool               `| @("END" "DESIGN")`
	Statement  *Statement         `| @@`
}

// Statement is a header statement such as VERSION, DESIGN or DIEAREA.
// Example: DIEAREA ( 0 0 ) ( 1000 1000 ) ;
type Statement struct {
	Pos  lexer.Position
	Name string   `@(Ident | Keyword)`
	Args []string `@(Ident | Keyword | Number | "(" | ")" | "+" | "-")* ";"`
}

// PinsSection holds the driver pins.
// Example: PINS 32 ; - DRIVERPIN_0 … ; END PINS
type PinsSection struct {
	Count int    `"PINS" @Number ";"`
	Pins  []*Pin `@@* "END" "PINS"`
}

// Pin is one PINS entry.
type Pin struct {
	Pos   lexer.Position
	Name  string      `"-" @Ident`
	Props []*Property `@@* ";"`
}

// ComponentsSection holds the ordinary pins.
type ComponentsSection struct {
	Count      int          `"COMPONENTS" @Number ";"`
	Components []*Component `@@* "END" "COMPONENTS"`
}

// Component is one COMPONENTS entry; the leading dash is optional.
// Example: p1 im_psyched + PLACED ( 5 6 ) N ;
type Component struct {
	Pos   lexer.Position
	Name  string      `"-"? @Ident`
	Model string      `@Ident`
	Props []*Property `@@* ";"`
}

// Property is a "+ NAME values…" clause of a pin or component.
type Property struct {
	Name   string   `"+" @(Ident | Keyword)`
	Values []*Value `@@*`
}

// Value is a single property value.
type Value struct {
	Coord *Coord   `  @@`
	Word  *string  `| @(Ident | Keyword)`
	Num   *float64 `| @Number`
}

// Coord is a parenthesized coordinate pair.
type Coord struct {
	X float64 `"(" @Number`
	Y float64 `@Number ")"`
}

// NetsFile is a parsed net list as written by WriteNets. The NETS header and
// trailer are optional.
type NetsFile struct {
	Count *int   `( "NETS" @Number ";" )?`
	Nets  []*Net `@@* ( "END" "NETS" )?`
}

// Net is one net: a free-form name and its connections.
type Net struct {
	Pos   lexer.Position
	Name  []string `"-" @(Ident | Keyword | Number)*`
	Conns []*Conn  `@@* ";"`
}

// Conn is a "( pin role )" connection.
type Conn struct {
	Pin  string `"(" @(Ident | Keyword | Number)`
	Role string `@(Ident | Keyword) ")"`
}

// property returns the first property named name, or nil.
func property(props []*Property, name string) *Property {
	for _, p := range props {
		if p.Name == name {
			return p
		}
	}

	return nil
}

// placement returns the location of a PLACED, FIXED or COVER property.
func placement(props []*Property) (*Coord, bool) {
	for _, name := range []string{"PLACED", "FIXED", "COVER"} {
		p := property(props, name)
		if p == nil {
			continue
		}
		for _, v := range p.Values {
			if v.Coord != nil {
				return v.Coord, true
			}
		}
	}

	return nil, false
}

// word returns the first word value of property name, or "".
func word(props []*Property, name string) string {
	p := property(props, name)
	if p == nil {
		return ""
	}
	for _, v := range p.Values {
		if v.Word != nil {
			return *v.Word
		}
	}

	return ""
}
