package config

// Default values for optional configuration fields.
const (
	DefaultAssetCount   = 10
	DefaultAccountCount = 32768 // 2^15
	DefaultOutputPath   = "private_ledger.json"
)

func (c *GeneratorConfig) applyDefaults() {
	if c.Assets.Count == 0 {
		c.Assets.Count = DefaultAssetCount
	}
	if c.Accounts.Count == 0 {
		c.Accounts.Count = DefaultAccountCount
	}
	if c.Output.Path == "" {
		c.Output.Path = DefaultOutputPath
	}
}
