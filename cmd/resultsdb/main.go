package main

import (
	"context"
	"resultsdb/cmd/resultsdb/commands"
)

func main() {
	commands.ExecuteContext(context.Background())
}
