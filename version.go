package jay

// Version is the release identifier shown by the REPL banner.
const Version = "0.3.0"

// BuildDate is stamped by the release process; "dev" for local builds.
const BuildDate = "dev"
