package version

// Version is overridden at build time with -ldflags "-X marks/internal/version.Version=...".
var Version = "dev"
