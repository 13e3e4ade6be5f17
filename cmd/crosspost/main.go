// Command crosspost is the CrossPost command line interface.
package main

import (
	"github.com/crosspost-labs/crosspost-cli/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
