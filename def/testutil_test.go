package def_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanchain/def"
)

// small is a hand-written design with two drivers, two components, comments
// and header statements.
const small = `# generated by hand
VERSION 5.8 ;
DESIGN chip ;
UNITS DISTANCE MICRONS 1000 ;
DIEAREA ( 0 0 ) ( 1000 800 ) ;

PINS 2 ;
- DRIVERPIN_0 + NET DRIVERPIN_0 + DIRECTION INPUT + USE SIGNAL
  + LAYER metal1 ( 0 0 ) ( 10 10 )
  + PLACED ( 0 100 ) N ;
- DRIVERPIN_16 + NET DRIVERPIN_16 + DIRECTION OUTPUT + USE SIGNAL
  + LAYER metal1 ( 0 0 ) ( 10 10 )
  + FIXED ( 1000 100 ) N ;
END PINS

COMPONENTS 2 ;
- p1 im_psyched + PLACED ( 5 6 ) N ;
p2 im_psyched + PLACED ( 7.5 -8 ) N ; # trailing comment
END COMPONENTS

END DESIGN
`

func newParser(t *testing.T) *def.Parser {
	t.Helper()

	p, err := def.NewParser()
	require.NoError(t, err)

	return p
}
