package domain

import "fmt"

// DefaultMoney задаёт стартовый баланс покупателя и значение для отрицательных сумм.
const DefaultMoney = 100

// Customer владеет заказами и деньгами, оплачивает заказы при завершении.
type Customer struct {
	id      string
	factory *Factory
	money   int
	orders  []*Order
}

// ID возвращает идентификатор покупателя.
func (c *Customer) ID() string {
	return c.id
}

// SetMoney устанавливает баланс; отрицательные суммы заменяются на DefaultMoney.
func (c *Customer) SetMoney(money int) {
	if money < 0 {
		c.money = DefaultMoney
		return
	}
	c.money = money
}

// Money возвращает текущий баланс.
func (c *Customer) Money() int {
	return c.money
}

// CreateOrder открывает новый заказ в магазине. Для nil-магазина вызывается panic.
func (c *Customer) CreateOrder(shop Inventory) *Order {
	order := newOrder(c.factory.newID(), shop, c.factory.observer)
	c.orders = append(c.orders, order)
	c.factory.observer.OrderCreated(c.id, order.Summary())
	return order
}

// Order возвращает заказ по индексу.
func (c *Customer) Order(index int) (*Order, error) {
	if index < 0 || index >= len(c.orders) {
		return nil, fmt.Errorf("%w: index %d, orders %d", ErrOrderIndexOutOfRange, index, len(c.orders))
	}
	return c.orders[index], nil
}

// CompleteOrder завершает заказ по индексу и списывает его стоимость.
// Порядок проверок: индекс, баланс, затем склад магазина. Деньги списываются
// только после успешного завершения заказа.
func (c *Customer) CompleteOrder(index int) error {
	order, err := c.Order(index)
	if err != nil {
		return err
	}
	cost := order.TotalOrderCost()
	if c.money < cost {
		err := fmt.Errorf("%w: balance %d, order cost %d", ErrNotEnoughMoney, c.money, cost)
		c.factory.observer.OrderRejected(order.Summary(), err)
		return err
	}
	if err := order.Complete(); err != nil {
		return err
	}
	c.money -= cost
	c.factory.observer.OrderPaid(c.id, order.Summary())
	return nil
}

// TotalNumberOfOrders возвращает количество всех заказов.
func (c *Customer) TotalNumberOfOrders() int {
	return len(c.orders)
}

// NumberOfCompletedOrders возвращает количество завершённых заказов.
func (c *Customer) NumberOfCompletedOrders() int {
	completed := 0
	for _, o := range c.orders {
		if o.IsComplete() {
			completed++
		}
	}
	return completed
}

// NumberOfIncompleteOrders возвращает количество открытых заказов.
func (c *Customer) NumberOfIncompleteOrders() int {
	return len(c.orders) - c.NumberOfCompletedOrders()
}
