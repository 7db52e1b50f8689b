// Command lithoprof computes continental geotherms and yield-strength
// envelopes, and post-processes rift model snapshots.
package main

import "github.com/katalvlaran/lithoprof/internal/cli"

func main() {
	cli.Execute()
}
