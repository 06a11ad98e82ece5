package domain

import "fmt"

// OrderStatus описывает жизненный цикл заказа: open → complete, без возврата.
type OrderStatus string

const (
	// OrderStatusOpen: позиции можно добавлять и менять.
	OrderStatusOpen OrderStatus = "open"
	// OrderStatusComplete: товар списан со склада, заказ больше не меняется.
	OrderStatusComplete OrderStatus = "complete"
)

// LineItem описывает позицию заказа. Цена фиксируется в момент добавления.
type LineItem struct {
	Product  *Product
	Price    int
	Quantity int
}

// BarCode возвращает штрихкод товара позиции.
func (i LineItem) BarCode() string {
	return i.Product.BarCode()
}

// Cost возвращает стоимость позиции: цена × количество, не больше math.MaxInt.
func (i LineItem) Cost() int {
	return saturatingMul(i.Price, i.Quantity)
}

// Order описывает корзину покупателя в одном магазине.
type Order struct {
	id       string
	shop     Inventory
	observer Observer
	status   OrderStatus
	items    []*LineItem
}

func newOrder(id string, shop Inventory, observer Observer) *Order {
	if isNilInventory(shop) {
		panic("domain: order requires a non-nil shop")
	}
	return &Order{
		id:       id,
		shop:     shop,
		observer: observer,
		status:   OrderStatusOpen,
	}
}

// ID возвращает идентификатор заказа.
func (o *Order) ID() string {
	return o.id
}

// Shop возвращает магазин, к которому привязан заказ.
func (o *Order) Shop() Inventory {
	return o.shop
}

// Status возвращает текущий статус заказа.
func (o *Order) Status() OrderStatus {
	return o.status
}

// IsComplete сообщает, завершён ли заказ.
func (o *Order) IsComplete() bool {
	return o.status == OrderStatusComplete
}

// AddItem добавляет позицию с нулевым количеством и текущей ценой магазина.
func (o *Order) AddItem(barCode string) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if _, ok := o.find(barCode); ok {
		return fmt.Errorf("%w: %q already in order", ErrBarCodeInUse, barCode)
	}
	product, err := o.shop.Product(barCode)
	if err != nil {
		return err
	}
	price, err := o.shop.PriceOf(barCode)
	if err != nil {
		return err
	}
	o.items = append(o.items, &LineItem{Product: product, Price: price})
	return nil
}

// RemoveItem удаляет позицию и возвращает её товар.
func (o *Order) RemoveItem(barCode string) (*Product, error) {
	if err := o.ensureOpen(); err != nil {
		return nil, err
	}
	i, ok := o.find(barCode)
	if !ok {
		return nil, o.notInOrder(barCode)
	}
	product := o.items[i].Product
	o.items = append(o.items[:i], o.items[i+1:]...)
	return product, nil
}

// Item возвращает товар позиции.
func (o *Order) Item(barCode string) (*Product, error) {
	i, ok := o.find(barCode)
	if !ok {
		return nil, o.notInOrder(barCode)
	}
	return o.items[i].Product, nil
}

// Items возвращает копию позиций в порядке добавления.
func (o *Order) Items() []LineItem {
	result := make([]LineItem, len(o.items))
	for i, item := range o.items {
		result[i] = *item
	}
	return result
}

// NumberOfItems возвращает количество позиций.
func (o *Order) NumberOfItems() int {
	return len(o.items)
}

// IncreaseQuantityOf увеличивает количество на единицу, если на складе магазина
// сейчас есть больше единиц, чем уже запрошено.
func (o *Order) IncreaseQuantityOf(barCode string) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	i, ok := o.find(barCode)
	if !ok {
		return o.notInOrder(barCode)
	}
	stock, err := o.shop.StockCount(barCode)
	if err != nil {
		return err
	}
	item := o.items[i]
	if item.Quantity >= stock {
		return fmt.Errorf("%w: %q requested %d, in stock %d", ErrStockUnavailable, barCode, item.Quantity+1, stock)
	}
	item.Quantity++
	return nil
}

// DecreaseQuantityOf уменьшает количество на единицу.
func (o *Order) DecreaseQuantityOf(barCode string) error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	i, ok := o.find(barCode)
	if !ok {
		return o.notInOrder(barCode)
	}
	item := o.items[i]
	if item.Quantity == 0 {
		return fmt.Errorf("%w: %q quantity is already zero", ErrStockUnavailable, barCode)
	}
	item.Quantity--
	return nil
}

// QuantityOf возвращает запрошенное количество товара.
func (o *Order) QuantityOf(barCode string) (int, error) {
	i, ok := o.find(barCode)
	if !ok {
		return 0, o.notInOrder(barCode)
	}
	return o.items[i].Quantity, nil
}

// TotalQuantity возвращает суммарное количество по всем позициям.
func (o *Order) TotalQuantity() int {
	total := 0
	for _, item := range o.items {
		total = saturatingAdd(total, item.Quantity)
	}
	return total
}

// CostOf возвращает стоимость позиции по зафиксированной цене.
func (o *Order) CostOf(barCode string) (int, error) {
	i, ok := o.find(barCode)
	if !ok {
		return 0, o.notInOrder(barCode)
	}
	return o.items[i].Cost(), nil
}

// TotalOrderCost возвращает стоимость всего заказа.
func (o *Order) TotalOrderCost() int {
	total := 0
	for _, item := range o.items {
		total = saturatingAdd(total, item.Cost())
	}
	return total
}

// Complete проверяет остатки по всем позициям и только потом покупает товар
// в магазине поштучно. Если магазин изменился между проверкой и покупкой,
// ошибка возвращается, заказ остаётся открытым, а уже купленные единицы
// не возвращаются.
func (o *Order) Complete() error {
	if err := o.ensureOpen(); err != nil {
		return err
	}
	if err := o.checkStock(); err != nil {
		o.observer.OrderRejected(o.Summary(), err)
		return err
	}
	for _, item := range o.items {
		for n := 0; n < item.Quantity; n++ {
			if err := o.shop.BuyProduct(item.BarCode()); err != nil {
				o.observer.OrderRejected(o.Summary(), err)
				return err
			}
		}
	}
	o.status = OrderStatusComplete
	o.observer.OrderCompleted(o.Summary())
	return nil
}

// Summary возвращает снимок заказа для логов и метрик.
func (o *Order) Summary() OrderSummary {
	return OrderSummary{
		ID:            o.id,
		Status:        o.status,
		NumberOfItems: len(o.items),
		TotalQuantity: o.TotalQuantity(),
		TotalCost:     o.TotalOrderCost(),
	}
}

func (o *Order) checkStock() error {
	for _, item := range o.items {
		stock, err := o.shop.StockCount(item.BarCode())
		if err != nil {
			return err
		}
		if item.Quantity > stock {
			return fmt.Errorf("%w: %q requested %d, in stock %d", ErrStockUnavailable, item.BarCode(), item.Quantity, stock)
		}
	}
	return nil
}

func (o *Order) ensureOpen() error {
	if o.status == OrderStatusComplete {
		return fmt.Errorf("%w: %s", ErrOrderAlreadyComplete, o.id)
	}
	return nil
}

func (o *Order) find(barCode string) (int, bool) {
	for i, item := range o.items {
		if item.BarCode() == barCode {
			return i, true
		}
	}
	return 0, false
}

func (o *Order) notInOrder(barCode string) error {
	return fmt.Errorf("%w: %q not in order %s", ErrProductNotRegistered, barCode, o.id)
}

func isNilInventory(shop Inventory) bool {
	if shop == nil {
		return true
	}
	s, ok := shop.(*Shop)
	return ok && s == nil
}
