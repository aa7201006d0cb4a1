// internal/version/version.go
package version

// Version is overridden at build time:
//
//	go build -ldflags "-X genesmith/internal/version.Version=v1.2.0" ./cmd/...
var Version = "dev"
