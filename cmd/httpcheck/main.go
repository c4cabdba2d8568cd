package main

import (
	"context"
	"os"
)

func main() {
	root := newRootCmd(os.Stdout, os.Stderr)
	err := root.ExecuteContext(context.Background())
	os.Exit(report(os.Stderr, root, err))
}
