package config

// Config maps to the config.toml file for the snapshots browser
type Config struct {
	ListenAddress      string `toml:"ListenAddress"`
	DatabasePath       string `toml:"DatabasePath"`
	SnapshotsDirectory string `toml:"SnapshotsDirectory"`
}
