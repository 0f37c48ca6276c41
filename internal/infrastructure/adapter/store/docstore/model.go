package docstore

import "time"

// SummaryRow is the relational shape of a per-user summary
type SummaryRow struct {
	UserID      string    `gorm:"column:user_id;primaryKey;size:255"`
	TotalCredit float64   `gorm:"column:total_credit;not null;default:0"`
	TotalDebit  float64   `gorm:"column:total_debit;not null;default:0"`
	CreatedAt   time.Time `gorm:"column:created_at;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;not null"`
}

// TableName overrides the default table name
func (SummaryRow) TableName() string {
	return "summaries"
}

// TransactionRow is the relational shape of a transaction record. The
// caller-supplied extra fields are kept verbatim as a JSON document.
type TransactionRow struct {
	TransactionID string    `gorm:"column:transaction_id;primaryKey;size:64"`
	UserID        string    `gorm:"column:user_id;not null;index;size:255"`
	Category      string    `gorm:"column:category;not null;size:64"`
	Amount        float64   `gorm:"column:amount;not null"`
	CreatedAt     time.Time `gorm:"column:created_at;not null"`
	Extra         []byte    `gorm:"column:extra;type:jsonb"`
}

// TableName overrides the default table name
func (TransactionRow) TableName() string {
	return "transactions"
}
