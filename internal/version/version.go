package version

// Version is the sidecar's semantic version. Release builds may override it
// with -ldflags "-X kuro-ml/internal/version.Version=...".
var Version = "0.1.0"

// Name is the service name reported in logs and metrics.
const Name = "kuro-ml"
