package domain_test

import (
	"testing"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

// recordingObserver запоминает события для проверок в тестах.
type recordingObserver struct {
	sold      []string
	created   []string
	completed []string
	rejected  []error
	paid      []string
}

func (r *recordingObserver) ProductSold(barCode string, _ int) {
	r.sold = append(r.sold, barCode)
}

func (r *recordingObserver) OrderCreated(_ string, order domain.OrderSummary) {
	r.created = append(r.created, order.ID)
}

func (r *recordingObserver) OrderCompleted(order domain.OrderSummary) {
	r.completed = append(r.completed, order.ID)
}

func (r *recordingObserver) OrderRejected(_ domain.OrderSummary, err error) {
	r.rejected = append(r.rejected, err)
}

func (r *recordingObserver) OrderPaid(_ string, order domain.OrderSummary) {
	r.paid = append(r.paid, order.ID)
}

// newStockedShop регистрирует товар и кладёт на склад stock единиц.
func newStockedShop(t *testing.T, f *domain.Factory, barCode string, price, stock int) *domain.Shop {
	t.Helper()
	shop := f.NewShop()
	addProduct(t, f, shop, barCode, price, stock)
	return shop
}

func addProduct(t *testing.T, f *domain.Factory, shop *domain.Shop, barCode string, price, stock int) {
	t.Helper()
	if err := shop.RegisterProduct(f.NewProduct(barCode, "test product "+barCode)); err != nil {
		t.Fatalf("register %s: %v", barCode, err)
	}
	if err := shop.SetPriceOf(barCode, price); err != nil {
		t.Fatalf("set price %s: %v", barCode, err)
	}
	for i := 0; i < stock; i++ {
		if err := shop.AddStock(barCode); err != nil {
			t.Fatalf("add stock %s: %v", barCode, err)
		}
	}
}
