package domain

type Product struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
}

// ProductSales é a soma bruta de itens de venda agrupados por produto
type ProductSales struct {
	ProductID int     `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// PopularProduct é um ProductSales enriquecido com os metadados do catálogo
type PopularProduct struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}
