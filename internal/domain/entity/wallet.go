package entity

import (
	"math/big"
	"time"
)

// WalletSession is the connected publishing account.
type WalletSession struct {
	Address     string    `json:"address"`
	ChainID     int64     `json:"chainId"`
	BalanceWei  *big.Int  `json:"balanceWei"`
	ConnectedAt time.Time `json:"connectedAt"`
}

// WalletEventType enumerates wallet provider notifications.
type WalletEventType string

const (
	WalletAccountsChanged WalletEventType = "accountsChanged"
	WalletChainChanged    WalletEventType = "chainChanged"
)

// WalletEvent is delivered by the wallet provider when the account or chain changes.
// An AccountsChanged event with an empty address means the wallet was disconnected.
type WalletEvent struct {
	Type    WalletEventType `json:"type"`
	Address string          `json:"address,omitempty"`
	ChainID int64           `json:"chainId,omitempty"`
}
