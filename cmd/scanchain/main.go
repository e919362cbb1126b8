// Command scanchain builds the 16 scan chains of a DEF design.
package main

import "github.com/katalvlaran/scanchain/cmd/scanchain/cmd"

func main() {
	cmd.Execute()
}
