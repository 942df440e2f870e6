// Package version reports build information stamped at link time
package version

// BuildInfo describes the running binary
type BuildInfo struct {
	Service string `json:"service"`
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// Info returns the build information for service
//
//	go build -ldflags "-X langdetect/internal/core/version.version=v0.1.0 -X langdetect/internal/core/version.commit=abcd"
func Info() BuildInfo {
	return BuildInfo{
		Service: service,
		Version: version,
		Commit:  commit,
		Date:    date,
	}
}

// SetService names the binary reporting build info, called once from main
func SetService(name string) {
	if name != "" {
		service = name
	}
}

var (
	service = "langdetect"
	version = "dev"
	commit  = "none"
	date    = "unknown"
)
