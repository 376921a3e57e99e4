package model

// Asset represents a synthetic asset definition.
type Asset struct {
	Code            string // Unique 3-letter code (e.g., "ABC")
	USDTDecimals    int    // Decimal places on the USDT side (0-6)
	BalanceDecimals int    // Decimal places on the balance side (6 - USDTDecimals)
	Price           int    // Price, arbitrary units (1000-100000)
}

// Account represents a synthetic account and its per-asset balances.
type Account struct {
	ID       string  // Pseudonymous identifier (64-char lowercase hex SHA-256)
	Balances []int64 // Balances[i] pairs with Dataset.Assets[i] (dense, one per asset)
}

// Dataset is the root fixture document.
//
// Assets and Accounts keep generation order; the JSON encoding in json.go
// preserves it so repeated runs with the same seed diff cleanly.
type Dataset struct {
	Assets    []Asset
	Accounts  []Account
	Timestamp int64 // Generation time (ms since epoch), captured after all data is built
}
