package domain_test

import (
	"errors"
	"testing"

	"github.com/vladislavdragonenkov/shop/internal/domain"
)

func TestShop_RegisterProduct(t *testing.T) {
	f := domain.NewFactory()
	shop := f.NewShop()

	if err := shop.RegisterProduct(f.NewProduct("A", "a")); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	price, err := shop.PriceOf("A")
	if err != nil {
		t.Fatalf("price failed: %v", err)
	}
	if price != domain.DefaultPrice {
		t.Fatalf("expected default price, got %d", price)
	}
	if stock, _ := shop.StockCount("A"); stock != 0 {
		t.Fatalf("expected zero stock, got %d", stock)
	}
	if sales, _ := shop.NumberOfSales("A"); sales != 0 {
		t.Fatalf("expected zero sales, got %d", sales)
	}
}

func TestShop_RegisterDuplicate(t *testing.T) {
	f := domain.NewFactory()
	shop := f.NewShop()
	if err := shop.RegisterProduct(f.NewProduct("A", "first")); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	err := shop.RegisterProduct(f.NewProduct("A", "second"))
	if !errors.Is(err, domain.ErrBarCodeInUse) {
		t.Fatalf("expected ErrBarCodeInUse, got %v", err)
	}
	if shop.NumberOfProducts() != 1 {
		t.Fatalf("expected 1 product, got %d", shop.NumberOfProducts())
	}
}

func TestShop_RegisterNilProduct(t *testing.T) {
	f := domain.NewFactory()
	shop := f.NewShop()
	if err := shop.RegisterProduct(nil); err != nil {
		t.Fatalf("register nil failed: %v", err)
	}
	if shop.NumberOfProducts() != 1 {
		t.Fatalf("expected anonymous product registered, got %d", shop.NumberOfProducts())
	}
}

func TestShop_UnregisterProduct(t *testing.T) {
	f := domain.NewFactory()
	shop := f.NewShop()
	product := f.NewProduct("A", "a")
	if err := shop.RegisterProduct(product); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Другой экземпляр с тем же штрихкодом считается тем же товаром.
	if err := shop.UnregisterProduct(f.NewProduct("A", "other")); err != nil {
		t.Fatalf("unregister failed: %v", err)
	}
	if shop.NumberOfProducts() != 0 {
		t.Fatalf("expected empty shop, got %d", shop.NumberOfProducts())
	}
	if err := shop.UnregisterProduct(product); !errors.Is(err, domain.ErrProductNotRegistered) {
		t.Fatalf("expected ErrProductNotRegistered, got %v", err)
	}
	if err := shop.UnregisterProduct(nil); !errors.Is(err, domain.ErrProductNotRegistered) {
		t.Fatalf("expected ErrProductNotRegistered for nil, got %v", err)
	}
	// Повторная регистрация после удаления начинается с нуля.
	if err := shop.RegisterProduct(product); err != nil {
		t.Fatalf("re-register failed: %v", err)
	}
}

func TestShop_UnknownBarCode(t *testing.T) {
	shop := domain.NewFactory().NewShop()

	checks := map[string]func() error{
		"AddStock":   func() error { return shop.AddStock("X") },
		"BuyProduct": func() error { return shop.BuyProduct("X") },
		"SetPriceOf": func() error { return shop.SetPriceOf("X", 5) },
		"StockCount": func() error { _, err := shop.StockCount("X"); return err },
		"Sales":      func() error { _, err := shop.NumberOfSales("X"); return err },
		"PriceOf":    func() error { _, err := shop.PriceOf("X"); return err },
		"Product":    func() error { _, err := shop.Product("X"); return err },
		"EmptyCode":  func() error { _, err := shop.Product(""); return err },
	}

	for name, check := range checks {
		t.Run(name, func(t *testing.T) {
			if err := check(); !errors.Is(err, domain.ErrProductNotRegistered) {
				t.Fatalf("expected ErrProductNotRegistered, got %v", err)
			}
		})
	}
}

func TestShop_BuyProduct(t *testing.T) {
	obs := &recordingObserver{}
	f := domain.NewFactory(domain.WithObserver(obs))
	shop := newStockedShop(t, f, "A", 7, 1)

	if err := shop.BuyProduct("A"); err != nil {
		t.Fatalf("buy failed: %v", err)
	}
	if err := shop.BuyProduct("A"); !errors.Is(err, domain.ErrStockUnavailable) {
		t.Fatalf("expected ErrStockUnavailable, got %v", err)
	}

	if shop.Revenue() != 7 {
		t.Fatalf("expected revenue 7, got %d", shop.Revenue())
	}
	if sales, _ := shop.NumberOfSales("A"); sales != 1 {
		t.Fatalf("expected 1 sale, got %d", sales)
	}
	if stock, _ := shop.StockCount("A"); stock != 0 {
		t.Fatalf("expected 0 stock, got %d", stock)
	}
	if len(obs.sold) != 1 || obs.sold[0] != "A" {
		t.Fatalf("expected one sold event, got %v", obs.sold)
	}
}

func TestShop_SetPriceOf(t *testing.T) {
	f := domain.NewFactory()
	shop := newStockedShop(t, f, "A", 10, 0)

	if price, _ := shop.PriceOf("A"); price != 10 {
		t.Fatalf("expected price 10, got %d", price)
	}
	if err := shop.SetPriceOf("A", -3); err != nil {
		t.Fatalf("set price failed: %v", err)
	}
	if price, _ := shop.PriceOf("A"); price != domain.DefaultPrice {
		t.Fatalf("expected default price, got %d", price)
	}
}

func TestShop_Aggregates(t *testing.T) {
	f := domain.NewFactory()
	shop := f.NewShop()
	if shop.NumberOfProducts() != 0 || shop.TotalStockCount() != 0 || shop.Revenue() != 0 {
		t.Fatal("expected empty shop aggregates to be zero")
	}

	addProduct(t, f, shop, "A", 1, 3)
	addProduct(t, f, shop, "B", 1, 4)

	if shop.NumberOfProducts() != 2 {
		t.Fatalf("expected 2 products, got %d", shop.NumberOfProducts())
	}
	if shop.TotalStockCount() != 7 {
		t.Fatalf("expected total stock 7, got %d", shop.TotalStockCount())
	}
}

func TestShop_MostPopular(t *testing.T) {
	f := domain.NewFactory()
	shop := f.NewShop()

	if _, err := shop.MostPopular(); !errors.Is(err, domain.ErrProductNotRegistered) {
		t.Fatalf("expected ErrProductNotRegistered on empty shop, got %v", err)
	}

	for _, code := range []string{"A", "B", "C"} {
		addProduct(t, f, shop, code, 1, 3)
	}
	sell := func(code string, n int) {
		for i := 0; i < n; i++ {
			if err := shop.BuyProduct(code); err != nil {
				t.Fatalf("buy %s: %v", code, err)
			}
		}
	}

	sell("A", 2)
	sell("B", 2)
	sell("C", 2)
	popular, err := shop.MostPopular()
	if err != nil {
		t.Fatalf("most popular failed: %v", err)
	}
	if popular.BarCode() != "A" {
		t.Fatalf("expected first registered product on tie, got %s", popular.BarCode())
	}

	sell("C", 1)
	popular, _ = shop.MostPopular()
	if popular.BarCode() != "C" {
		t.Fatalf("expected C, got %s", popular.BarCode())
	}
}
