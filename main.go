// Command charsheet turns a wiki character article into a templated
// markdown character sheet.
package main

import "github.com/gaurav-prasanna/charsheet/cmd"

func main() {
	cmd.Execute()
}
