package domain

import "fmt"

// Shop ведёт каталог товаров, склад и учёт выручки.
type Shop struct {
	factory *Factory
	// records хранит порядок регистрации, index: поиск по штрихкоду.
	records []*StockRecord
	index   map[BarCode]*StockRecord
	revenue int
}

// RegisterProduct добавляет товар в каталог с ценой по умолчанию и нулевым остатком.
// Для nil регистрируется анонимный товар.
func (s *Shop) RegisterProduct(product *Product) error {
	if product == nil {
		product = s.factory.NewProduct("", "")
	}
	if _, exists := s.index[product.Key()]; exists {
		return fmt.Errorf("%w: %s", ErrBarCodeInUse, product.BarCode())
	}
	record := s.factory.NewStockRecord(product)
	s.records = append(s.records, record)
	s.index[product.Key()] = record
	return nil
}

// UnregisterProduct удаляет товар из каталога вместе с его записью склада.
func (s *Shop) UnregisterProduct(product *Product) error {
	if product == nil {
		return fmt.Errorf("%w: nil product", ErrProductNotRegistered)
	}
	record, err := s.record(product.BarCode())
	if err != nil {
		return err
	}
	delete(s.index, product.Key())
	for i, r := range s.records {
		if r == record {
			s.records = append(s.records[:i], s.records[i+1:]...)
			break
		}
	}
	return nil
}

// AddStock добавляет одну единицу товара на склад.
func (s *Shop) AddStock(barCode string) error {
	record, err := s.record(barCode)
	if err != nil {
		return err
	}
	record.AddStock()
	return nil
}

// BuyProduct продаёт одну единицу товара по текущей цене.
func (s *Shop) BuyProduct(barCode string) error {
	record, err := s.record(barCode)
	if err != nil {
		return err
	}
	if err := record.BuyProduct(); err != nil {
		return err
	}
	s.revenue = saturatingAdd(s.revenue, record.Price())
	s.factory.observer.ProductSold(barCode, record.Price())
	return nil
}

// NumberOfProducts возвращает количество зарегистрированных товаров.
func (s *Shop) NumberOfProducts() int {
	return len(s.records)
}

// TotalStockCount возвращает суммарный остаток по всем товарам.
func (s *Shop) TotalStockCount() int {
	total := 0
	for _, r := range s.records {
		total = saturatingAdd(total, r.StockCount())
	}
	return total
}

// StockCount возвращает остаток товара.
func (s *Shop) StockCount(barCode string) (int, error) {
	record, err := s.record(barCode)
	if err != nil {
		return 0, err
	}
	return record.StockCount(), nil
}

// NumberOfSales возвращает число проданных единиц товара.
func (s *Shop) NumberOfSales(barCode string) (int, error) {
	record, err := s.record(barCode)
	if err != nil {
		return 0, err
	}
	return record.NumberOfSales(), nil
}

// MostPopular возвращает товар с наибольшим числом продаж.
// При равенстве побеждает зарегистрированный раньше.
func (s *Shop) MostPopular() (*Product, error) {
	if len(s.records) == 0 {
		return nil, fmt.Errorf("%w: shop has no products", ErrProductNotRegistered)
	}
	popular := s.records[0]
	for _, r := range s.records[1:] {
		if r.NumberOfSales() > popular.NumberOfSales() {
			popular = r
		}
	}
	return popular.Product(), nil
}

// Product возвращает товар по штрихкоду.
func (s *Shop) Product(barCode string) (*Product, error) {
	record, err := s.record(barCode)
	if err != nil {
		return nil, err
	}
	return record.Product(), nil
}

// SetPriceOf меняет цену товара; цены <= 0 заменяются на DefaultPrice.
func (s *Shop) SetPriceOf(barCode string, price int) error {
	record, err := s.record(barCode)
	if err != nil {
		return err
	}
	record.SetPrice(price)
	return nil
}

// PriceOf возвращает текущую цену товара.
func (s *Shop) PriceOf(barCode string) (int, error) {
	record, err := s.record(barCode)
	if err != nil {
		return 0, err
	}
	return record.Price(), nil
}

// Revenue возвращает накопленную выручку.
func (s *Shop) Revenue() int {
	return s.revenue
}

func (s *Shop) record(barCode string) (*StockRecord, error) {
	record, ok := s.index[BarCode(barCode)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrProductNotRegistered, barCode)
	}
	return record, nil
}

var _ Inventory = (*Shop)(nil)
