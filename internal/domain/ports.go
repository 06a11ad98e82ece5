package domain

// Inventory описывает то, что заказ знает о магазине. Заказ не владеет магазином
// и перечитывает цену и остатки при каждой проверке.
type Inventory interface {
	// Product возвращает товар по штрихкоду или ErrProductNotRegistered.
	Product(barCode string) (*Product, error)
	// PriceOf возвращает текущую цену товара.
	PriceOf(barCode string) (int, error)
	// StockCount возвращает текущий остаток товара.
	StockCount(barCode string) (int, error)
	// BuyProduct продаёт одну единицу товара и учитывает выручку.
	BuyProduct(barCode string) error
}

// Observer получает уведомления о доменных событиях (метрики, аудит, логи).
// Реализации не должны влиять на исход операции.
type Observer interface {
	// ProductSold вызывается после продажи одной единицы товара.
	ProductSold(barCode string, price int)
	// OrderCreated вызывается, когда покупатель открывает новый заказ.
	OrderCreated(customerID string, order OrderSummary)
	// OrderCompleted вызывается после успешного завершения заказа.
	OrderCompleted(order OrderSummary)
	// OrderRejected вызывается, если завершение или оплата заказа отклонены.
	OrderRejected(order OrderSummary, err error)
	// OrderPaid вызывается после списания денег покупателя.
	OrderPaid(customerID string, order OrderSummary)
}

// OrderSummary содержит снимок заказа для наблюдателей.
type OrderSummary struct {
	ID            string
	Status        OrderStatus
	NumberOfItems int
	TotalQuantity int
	TotalCost     int
}

// NopObserver игнорирует все события.
type NopObserver struct{}

func (NopObserver) ProductSold(string, int)           {}
func (NopObserver) OrderCreated(string, OrderSummary) {}
func (NopObserver) OrderCompleted(OrderSummary)       {}
func (NopObserver) OrderRejected(OrderSummary, error) {}
func (NopObserver) OrderPaid(string, OrderSummary)    {}

// MultiObserver рассылает события всем наблюдателям по порядку.
type MultiObserver []Observer

func (m MultiObserver) ProductSold(barCode string, price int) {
	for _, o := range m {
		o.ProductSold(barCode, price)
	}
}

func (m MultiObserver) OrderCreated(customerID string, order OrderSummary) {
	for _, o := range m {
		o.OrderCreated(customerID, order)
	}
}

func (m MultiObserver) OrderCompleted(order OrderSummary) {
	for _, o := range m {
		o.OrderCompleted(order)
	}
}

func (m MultiObserver) OrderRejected(order OrderSummary, err error) {
	for _, o := range m {
		o.OrderRejected(order, err)
	}
}

func (m MultiObserver) OrderPaid(customerID string, order OrderSummary) {
	for _, o := range m {
		o.OrderPaid(customerID, order)
	}
}

var (
	_ Observer = NopObserver{}
	_ Observer = MultiObserver(nil)
)
