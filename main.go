package main

import (
	"os"

	"github.com/flarebyte/describe-object/cmd/describe-object/root"
)

// Same entry point as cmd/describe-object, so `go install` of the module
// root also yields a working binary.
func main() {
	os.Exit(root.Main(os.Args[1:], os.Stdout, os.Stderr))
}
