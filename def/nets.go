package def

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/scanchain/chain"
)

// Connection roles of a net.
const (
	RoleIn  = "conn_in"
	RoleOut = "conn_out"
)

// NetName is the placeholder name given to every written net.
const NetName = "BOGUS NET NAME"

// ErrNetFormat is returned for a net that is not a single conn_in → conn_out link.
var ErrNetFormat = errors.New("def: malformed net")

// Links turns a parsed net list into its conn_in → conn_out map. Each net
// must have exactly two connections; without explicit roles the first one is
// conn_in. A pin driving two nets is an error.
func Links(f *NetsFile) (map[string]string, error) {
	links := make(map[string]string, len(f.Nets))

	var from, to string
	for _, n := range f.Nets {
		if len(n.Conns) != 2 {
			return nil, fmt.Errorf("%w: %d connections at %s", ErrNetFormat, len(n.Conns), n.Pos)
		}
		from, to = n.Conns[0].Pin, n.Conns[1].Pin
		if n.Conns[0].Role == RoleOut && n.Conns[1].Role == RoleIn {
			from, to = to, from
		}
		if prev, ok := links[from]; ok {
			return nil, fmt.Errorf("%w: %s drives both %s and %s at %s", ErrNetFormat, from, prev, to, n.Pos)
		}
		links[from] = to
	}

	return links, nil
}

// WriteNets writes one net per chain edge, chains in pair order.
func WriteNets(w io.Writer, set chain.Set) error {
	bw := bufio.NewWriter(w)

	var i int
	for _, c := range set {
		for i = 1; i < len(c.Points); i++ {
			fmt.Fprintf(bw, "- %s\n  (  %s %s )\n  (  %s %s )\n;\n",
				NetName, c.Points[i-1].Name, RoleIn, c.Points[i].Name, RoleOut)
		}
	}

	return bw.Flush()
}
