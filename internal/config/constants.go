package config

// Configuration file paths
const (
	ConfigPathAbilities = "configs/abilities.json"
	SchemaPathAbilities = "configs/schemas/abilities.schema.json"
)

// Defaults
const (
	DefaultPort             = "8080"
	DefaultLogLevel         = "info"
	DefaultLogFormat        = "text"
	DefaultEnvironment      = "dev"
	DefaultServiceName      = "cheatkeeper"
	DefaultVersion          = "dev"
	DefaultSessionCacheSize = "1024"
)
