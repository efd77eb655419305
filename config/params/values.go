package params

// ConfigName enum describes the type of known network in use.
type ConfigName = int

const (
	// Mainnet is the default configuration.
	Mainnet ConfigName = iota
	// Minimal is the spec-test configuration with small list lengths.
	Minimal
)

// ConfigNames provides network configuration names.
var ConfigNames = map[ConfigName]string{
	Mainnet: "mainnet",
	Minimal: "minimal",
}
