package model

import (
	"bytes"
	"fmt"
)

// MarshalJSON encodes the dataset as the compact fixture document:
//
//	{"assets":{"<code>":{"usdt_decimals":n,"balance_decimals":n,"price":n},...},
//	 "accounts":{"<hash>":{"<code>":n,...},...},
//	 "timestamp":n}
//
// Objects are written in insertion order (assets in generation order,
// accounts in index order, balances in asset order) rather than the sorted
// key order encoding/json would impose on maps. Consumers must not rely on
// the ordering; it exists for reproducible diffing.
func (d *Dataset) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(`{"assets":{`)
	for i, a := range d.Assets {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `%q:{"usdt_decimals":%d,"balance_decimals":%d,"price":%d}`,
			a.Code, a.USDTDecimals, a.BalanceDecimals, a.Price)
	}

	buf.WriteString(`},"accounts":{`)
	for i, acct := range d.Accounts {
		if len(acct.Balances) != len(d.Assets) {
			return nil, fmt.Errorf("account %s: %d balances for %d assets",
				acct.ID, len(acct.Balances), len(d.Assets))
		}
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:{", acct.ID)
		for j, balance := range acct.Balances {
			if j > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, `%q:%d`, d.Assets[j].Code, balance)
		}
		buf.WriteByte('}')
	}

	fmt.Fprintf(&buf, `},"timestamp":%d}`, d.Timestamp)
	return buf.Bytes(), nil
}
