// spotlight is the command line interface for ner-spotlight.
package main

import "github.com/turtacn/ner-spotlight/internal/interfaces/cli"

func main() {
	cli.Execute()
}
