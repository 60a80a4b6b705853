// This program inspects the rules of the registered chains from the
// command line.
package main

import "github.com/ardanlabs/chainrules/app/tooling/rules/cmd"

func main() {
	cmd.Execute()
}
