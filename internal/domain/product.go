package domain

// BarCode служит ключом товара в каталоге магазина и в заказе.
type BarCode string

// Product описывает неизменяемую карточку товара. Равенство определяется только штрихкодом.
type Product struct {
	barCode     BarCode
	description string
}

// BarCode возвращает штрихкод товара.
func (p *Product) BarCode() string {
	return string(p.barCode)
}

// Description возвращает описание товара.
func (p *Product) Description() string {
	return p.description
}

// Key возвращает штрихкод в виде ключа каталога.
func (p *Product) Key() BarCode {
	return p.barCode
}

// Equal сравнивает товары по штрихкоду. nil не равен ничему.
func (p *Product) Equal(other *Product) bool {
	if p == nil || other == nil {
		return false
	}
	return p.barCode == other.barCode
}
