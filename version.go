// version.go

package tcl

// Version and BuildDate are reported by the cmd/tcl shell. BuildDate is
// overridden at link time for release builds.
var (
	Version   = "0.1.0"
	BuildDate = "dev"
)
