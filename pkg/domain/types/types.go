package types

// Version is the apkdrop release version, overridable via ldflags
var Version = "0.1.0"

// Process exit codes by failure category. Assignment follows the
// publishing pipeline stages: remote storage, filename derivation,
// changelog extraction, build output parsing.
const (
	ExitOK          = 0
	ExitStorage     = 1
	ExitFileName    = 3
	ExitChangelog   = 4
	ExitOutputParse = 5
)
