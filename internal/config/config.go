package config

// GeneratorConfig is the root configuration for a fixture generation run.
type GeneratorConfig struct {
	Assets   AssetsConfig   `yaml:"assets"`
	Accounts AccountsConfig `yaml:"accounts"`
	Output   OutputConfig   `yaml:"output"`
	Seed     int64          `yaml:"seed"` // 0 = derive from the clock
}

// AssetsConfig controls synthetic asset generation.
type AssetsConfig struct {
	Count int `yaml:"count"`
}

// AccountsConfig controls synthetic account generation.
type AccountsConfig struct {
	Count int `yaml:"count"`
}

// OutputConfig controls where the fixture document is written.
type OutputConfig struct {
	Path string `yaml:"path"`
}
