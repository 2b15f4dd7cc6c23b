package config

// OutputConfig controls how CLI reports are rendered
type OutputConfig struct {
	Format   string `yaml:"format" validate:"omitempty,oneof=json text"`
	Language string `yaml:"language" validate:"omitempty,oneof=en de fr it"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Output OutputConfig `yaml:"output"`
}
