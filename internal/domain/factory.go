package domain

import "github.com/google/uuid"

// Factory создаёт объекты домена. Объекты разных фабрик не разделяют состояние.
type Factory struct {
	observer    Observer
	placeholder func() string
	newID       func() string
}

// FactoryOption настраивает Factory.
type FactoryOption func(*Factory)

// WithObserver подключает наблюдателя доменных событий.
func WithObserver(observer Observer) FactoryOption {
	return func(f *Factory) {
		if observer != nil {
			f.observer = observer
		}
	}
}

// WithPlaceholderGenerator задаёт генератор значений для пустых штрихкодов и описаний.
func WithPlaceholderGenerator(gen func() string) FactoryOption {
	return func(f *Factory) {
		if gen != nil {
			f.placeholder = gen
		}
	}
}

// WithIDGenerator задаёт генератор идентификаторов заказов и покупателей.
func WithIDGenerator(gen func() string) FactoryOption {
	return func(f *Factory) {
		if gen != nil {
			f.newID = gen
		}
	}
}

// NewFactory возвращает фабрику с uuid-генераторами и NopObserver по умолчанию.
func NewFactory(opts ...FactoryOption) *Factory {
	f := &Factory{
		observer:    NopObserver{},
		placeholder: uuid.NewString,
		newID:       uuid.NewString,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewProduct создаёт товар. Пустые значения заменяются случайной непустой строкой.
func (f *Factory) NewProduct(barCode, description string) *Product {
	if barCode == "" {
		barCode = f.placeholderValue()
	}
	if description == "" {
		description = f.placeholderValue()
	}
	return &Product{barCode: BarCode(barCode), description: description}
}

// NewStockRecord создаёт запись склада с ценой по умолчанию и нулевыми счётчиками.
// Для nil создаётся анонимный товар.
func (f *Factory) NewStockRecord(product *Product) *StockRecord {
	if product == nil {
		product = f.NewProduct("", "")
	}
	return &StockRecord{product: product, price: DefaultPrice}
}

// NewShop создаёт пустой магазин.
func (f *Factory) NewShop() *Shop {
	return &Shop{
		factory: f,
		index:   make(map[BarCode]*StockRecord),
	}
}

// NewCustomer создаёт покупателя с DefaultMoney и без заказов.
func (f *Factory) NewCustomer() *Customer {
	return &Customer{
		id:      f.newID(),
		factory: f,
		money:   DefaultMoney,
	}
}

func (f *Factory) placeholderValue() string {
	// Генератор из опций может вернуть пустую строку: повторяем до непустой.
	for {
		if v := f.placeholder(); v != "" {
			return v
		}
	}
}
