package salesrep

type SalesRepResponse struct {
	ID         string  `json:"id"`
	Name       string  `json:"nome"`
	Email      *string `json:"email,omitempty"`
	Role       string  `json:"role"`
	MetaDiaria int     `json:"meta_diaria"`
	Squad      string  `json:"squad"`
	Active     bool    `json:"ativo"`
	Nivel      int     `json:"nivel"`
	HireDate   *string `json:"data_contratacao,omitempty"`
}
