package config

import (
	"errors"
	"fmt"

	"github.com/rickgao/ledger-fixtures/internal/generator"
)

// Validate checks that all required fields are set and values are valid.
//
// The asset count is bounded by the number of distinct 3-letter codes the
// generator can hand out; anything larger is rejected here so a run never
// starts work it cannot finish.
func (c *GeneratorConfig) Validate() error {
	if c.Assets.Count < 1 {
		return errors.New("assets.count must be >= 1")
	}
	if c.Assets.Count > generator.MaxCodes {
		return fmt.Errorf("assets.count must be <= %d (distinct 3-letter codes), got %d",
			generator.MaxCodes, c.Assets.Count)
	}

	if c.Accounts.Count < 1 {
		return errors.New("accounts.count must be >= 1")
	}

	if c.Output.Path == "" {
		return errors.New("output.path is required")
	}

	return nil
}
