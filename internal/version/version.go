package version

// Version is the funlint release version. Overridable at build time:
// -ldflags "-X github.com/funvibe/funlint/internal/version.Version=..."
var Version = "0.1.0"
