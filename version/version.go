package version

// This package holds build metadata that is injected at link time using
// go build -ldflags "-X github.com/lvoytek/xc3-powerframe/version.GitHash=... -X github.com/lvoytek/xc3-powerframe/version.BuildTime=..."

var (
	// GitHash is the commit id the binary was built from
	GitHash = "unknown"

	// BuildTime is the UTC time at which the binary was linked
	BuildTime = "unknown"
)
