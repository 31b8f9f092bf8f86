package config

// Version is the docgraph binary version.
// Set at build time via: -ldflags "-X github.com/docgraphhq/docgraph/internal/config.Version=<tag>"
// Defaults to "dev" when built without ldflags.
var Version = "dev"
