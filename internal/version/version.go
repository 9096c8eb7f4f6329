// Package version holds build metadata. Version is overridden at build time:
//
//	go build -ldflags "-X github.com/ndewijer/Real-Estate-Tracker-Backend/internal/version.Version=1.2.0"
package version

// Version is the application version.
var Version = "dev"

// Features lists the optional capabilities compiled into this build.
var Features = map[string]bool{
	"portfolio_snapshots": true,
	"inflation_overrides": true,
	"projected_mirr":      true,
}
