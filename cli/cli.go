package cli

// Version and Date should be set at build time using ldflags, e.g.:
//
//	-ldflags "-X 'github.com/flarebyte/describe-object/cli.Version=1.2.3' -X 'github.com/flarebyte/describe-object/cli.Date=2026-10-18'"
var (
	Version string
	Date    string
)
