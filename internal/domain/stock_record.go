package domain

import (
	"fmt"
	"math"
)

// DefaultPrice назначается новой записи и любой цене <= 0.
const DefaultPrice = 1

// StockRecord хранит цену, остаток и число продаж одного товара в магазине.
type StockRecord struct {
	product       *Product
	price         int
	stockCount    int
	numberOfSales int
}

// Product возвращает товар записи.
func (r *StockRecord) Product() *Product {
	return r.product
}

// Price возвращает текущую цену за единицу.
func (r *StockRecord) Price() int {
	return r.price
}

// SetPrice устанавливает цену; значения <= 0 заменяются на DefaultPrice.
func (r *StockRecord) SetPrice(price int) {
	if price <= 0 {
		r.price = DefaultPrice
		return
	}
	r.price = price
}

// StockCount возвращает остаток на складе.
func (r *StockRecord) StockCount() int {
	return r.stockCount
}

// NumberOfSales возвращает количество проданных единиц.
func (r *StockRecord) NumberOfSales() int {
	return r.numberOfSales
}

// AddStock добавляет одну единицу на склад.
func (r *StockRecord) AddStock() {
	r.stockCount = saturatingInc(r.stockCount)
}

// BuyProduct списывает одну единицу и учитывает продажу.
func (r *StockRecord) BuyProduct() error {
	if r.stockCount < 1 {
		return fmt.Errorf("%w: %s", ErrStockUnavailable, r.product.BarCode())
	}
	r.stockCount--
	r.numberOfSales = saturatingInc(r.numberOfSales)
	return nil
}

// saturatingInc увеличивает счётчик на единицу, не переходя через math.MaxInt.
func saturatingInc(n int) int {
	if n == math.MaxInt {
		return n
	}
	return n + 1
}

// saturatingAdd складывает неотрицательные значения, не переходя через math.MaxInt.
func saturatingAdd(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

// saturatingMul умножает неотрицательные значения, не переходя через math.MaxInt.
func saturatingMul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	if a > math.MaxInt/b {
		return math.MaxInt
	}
	return a * b
}
