package domain

// Update is one row of the updates feed. Timestamp is epoch milliseconds; IDs
// grow strictly with insertion order. Rows are immutable and never deleted.
type Update struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	Mensagem  string `json:"mensagem"`
	Timestamp int64  `json:"timestamp" gorm:"index"`
}

func (Update) TableName() string {
	return "atualizacoes"
}
