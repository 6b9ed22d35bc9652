package repository

type Account struct {
	Address string `gorm:"primaryKey;size:42" json:"address"` // 0x + 40 hex chars
}

type Chain struct {
	ID        int64   `gorm:"primaryKey;autoIncrement:false" json:"id"`
	Name      string  `gorm:"size:100;not null" json:"name"`
	RPC       string  `gorm:"column:rpc;size:255;not null" json:"rpc"`
	Blocktime float64 `gorm:"not null" json:"blocktime"` // average seconds per block
}

type Transaction struct {
	Hash        string `gorm:"primaryKey;size:66" json:"hash"`
	Block       uint64 `gorm:"column:block_number;not null;index:idx_transactions_sender,priority:3" json:"block"`
	FromAddress string `gorm:"size:42;not null;index:idx_transactions_sender,priority:1" json:"from"`
	ToAddress   string `gorm:"size:42;not null;index:idx_transactions_recipient,priority:2" json:"to"`
	ChainID     int64  `gorm:"not null;index:idx_transactions_sender,priority:2;index:idx_transactions_recipient,priority:1" json:"chainId"`

	From  Account `gorm:"foreignKey:FromAddress;references:Address" json:"-"`
	To    Account `gorm:"foreignKey:ToAddress;references:Address" json:"-"`
	Chain Chain   `gorm:"foreignKey:ChainID" json:"-"`
}

// RecipientCount is one row of a per-recipient transaction tally.
type RecipientCount struct {
	Address string `gorm:"column:value"`
	Count   int64  `gorm:"column:total"`
}
