package revenue

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleTransaction adalah ledger utama (vendas). Satu venda bisa masuk dalam
// beberapa parcela; hanya parcela pertama yang membawa revenue.
type SaleTransaction struct {
	ID            uuid.UUID        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CustomerID    uuid.UUID        `gorm:"column:cliente_id;type:uuid;not null;index"`
	ProductName   string           `gorm:"column:produto;not null"`
	ParcelaNum    int              `gorm:"column:parcela_num;not null;default:1"`
	Valor         decimal.Decimal  `gorm:"column:valor;type:numeric(14,2);not null"`
	ValorOverride *decimal.Decimal `gorm:"column:valor_override;type:numeric(14,2)"`
	DataVenda     time.Time        `gorm:"column:data_venda;type:date;not null;index"`
	CreatedAt     time.Time
}

func (SaleTransaction) TableName() string {
	return "vendas"
}

// ConsortiumContract (consorcio_contratos): nilai kredit dihitung penuh
// sebagai revenue squad consorcio.
type ConsortiumContract struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ValorCredito decimal.Decimal `gorm:"column:valor_credito;type:numeric(14,2);not null"`
	DataContrato time.Time       `gorm:"column:data_contrato;type:date;not null;index"`
	CreatedAt    time.Time
}

func (ConsortiumContract) TableName() string {
	return "consorcio_contratos"
}

// AuctionSale (leilao_vendas): hanya kategori arremate yang dihitung.
type AuctionSale struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ValorLiquido decimal.Decimal `gorm:"column:valor_liquido;type:numeric(14,2);not null"`
	ValorBruto   decimal.Decimal `gorm:"column:valor_bruto;type:numeric(14,2);not null"`
	Categoria    string          `gorm:"type:varchar(30);not null;index"`
	DataVenda    time.Time       `gorm:"column:data_venda;type:date;not null;index"`
	CreatedAt    time.Time
}

func (AuctionSale) TableName() string {
	return "leilao_vendas"
}
