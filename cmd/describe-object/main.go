package main

import (
	"os"

	"github.com/flarebyte/describe-object/cmd/describe-object/root"
)

func main() {
	os.Exit(root.Main(os.Args[1:], os.Stdout, os.Stderr))
}
