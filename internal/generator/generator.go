package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/rickgao/ledger-fixtures/internal/identity"
	"github.com/rickgao/ledger-fixtures/internal/model"
)

// Value ranges for sampled fields.
const (
	maxDecimals = 6 // usdt_decimals + balance_decimals always sum to this

	minPrice = 1000
	maxPrice = 100000

	minBalance = -100
	maxBalance = 1000000
)

// Params controls the size of a generated dataset.
type Params struct {
	AssetCount   int
	AccountCount int
}

// Generate produces a complete fixture dataset: AssetCount asset definitions,
// AccountCount accounts each holding one balance per asset, and a
// millisecond timestamp captured after all generation completes.
func Generate(rng *rand.Rand, p Params) (*model.Dataset, error) {
	assets, err := GenerateAssets(rng, p.AssetCount)
	if err != nil {
		return nil, err
	}
	accounts := GenerateAccounts(rng, assets, p.AccountCount)

	return &model.Dataset{
		Assets:    assets,
		Accounts:  accounts,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// GenerateAssets produces n asset definitions with unique 3-letter codes.
// Decimals are split so the usdt/balance pair always sums to 6; prices are
// uniform on [1000, 100000].
func GenerateAssets(rng *rand.Rand, n int) ([]model.Asset, error) {
	var seq codeSequence
	assets := make([]model.Asset, 0, n)
	for i := 0; i < n; i++ {
		code, err := seq.Next()
		if err != nil {
			return nil, fmt.Errorf("asset %d of %d: %w", i+1, n, err)
		}
		usdtDecimals := rng.IntN(maxDecimals + 1)
		assets = append(assets, model.Asset{
			Code:            code,
			USDTDecimals:    usdtDecimals,
			BalanceDecimals: maxDecimals - usdtDecimals,
			Price:           minPrice + rng.IntN(maxPrice-minPrice+1),
		})
	}
	return assets, nil
}

// GenerateAccounts produces n accounts in increasing index order (1..n).
// Each account holds one balance per asset, stored positionally against the
// asset list, sampled independently and uniformly on [-100, 1000000].
func GenerateAccounts(rng *rand.Rand, assets []model.Asset, n int) []model.Account {
	accounts := make([]model.Account, 0, n)
	for i := 1; i <= n; i++ {
		balances := make([]int64, len(assets))
		for j := range assets {
			balances[j] = minBalance + int64(rng.IntN(maxBalance-minBalance+1))
		}
		accounts = append(accounts, model.Account{
			ID:       identity.AccountID(uint64(i)),
			Balances: balances,
		})
	}
	return accounts
}
