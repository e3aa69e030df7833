// Command htmldown converts HTML read from standard input into Markdown.
package main

import "github.com/gaurav-prasanna/htmldown/cmd"

func main() {
	cmd.Execute()
}
