package revenue

import "strings"

// PricePattern memetakan substring nama produk ke gross price (cents).
// Daftar ini menggantikan harga yang tercatat di transaksi: harga jual
// resmi per produk, bukan nilai parcela yang masuk.
type PricePattern struct {
	Substring  string
	GrossCents int64
}

// priceTable dicocokkan berurutan, case-insensitive, first match wins.
// Pola yang lebih spesifik harus di atas pola generiknya
// ("mentoria individual" sebelum "mentoria").
var priceTable = []PricePattern{
	{"efeito alavanca", 1_500_000},
	{"mentoria individual", 2_500_000},
	{"mentoria", 1_200_000},
	{"imersao", 497_000},
	{"consultoria", 3_000_000},
	{"comunidade", 199_700},
}

// LookupGrossPrice mengembalikan gross price untuk nama produk, atau 0 jika
// tidak ada pola yang cocok.
func LookupGrossPrice(productName string) int64 {
	name := strings.ToLower(productName)
	for _, p := range priceTable {
		if strings.Contains(name, p.Substring) {
			return p.GrossCents
		}
	}
	return 0
}
