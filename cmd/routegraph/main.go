// Command routegraph reads a weighted directed edge list and prints either
// every shortest route in the graph or the route between two named nodes.
//
//	routegraph                      # edges on stdin, print whole graph
//	routegraph edges.txt            # edges from file, print whole graph
//	routegraph FROM TO              # edges on stdin, print one route
//	routegraph edges.txt FROM TO    # edges from file, print one route
package main

import (
	"os"

	"github.com/katalvlaran/routegraph/cmd/routegraph/commands"
)

func main() {
	os.Exit(commands.Execute())
}
