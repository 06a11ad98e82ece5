package domain

import (
	"errors"
	"math"
	"testing"
)

func TestNewStockRecord_Defaults(t *testing.T) {
	f := NewFactory()
	p := f.NewProduct("A", "a")
	r := f.NewStockRecord(p)

	if r.Product() != p {
		t.Fatal("expected record to reference the product")
	}
	if r.Price() != DefaultPrice {
		t.Fatalf("expected default price %d, got %d", DefaultPrice, r.Price())
	}
	if r.StockCount() != 0 || r.NumberOfSales() != 0 {
		t.Fatalf("expected zero counters, got stock=%d sales=%d", r.StockCount(), r.NumberOfSales())
	}
}

func TestNewStockRecord_NilProduct(t *testing.T) {
	r := NewFactory().NewStockRecord(nil)
	if r.Product() == nil || r.Product().BarCode() == "" {
		t.Fatal("expected anonymous product")
	}
}

func TestStockRecord_SetPrice(t *testing.T) {
	cases := []struct {
		price int
		want  int
	}{
		{price: 25, want: 25},
		{price: 1, want: 1},
		{price: 0, want: DefaultPrice},
		{price: -7, want: DefaultPrice},
		{price: math.MinInt, want: DefaultPrice},
	}

	r := NewFactory().NewStockRecord(nil)
	for _, tc := range cases {
		r.SetPrice(tc.price)
		if r.Price() != tc.want {
			t.Fatalf("SetPrice(%d): got %d, want %d", tc.price, r.Price(), tc.want)
		}
	}
}

func TestStockRecord_BuyProduct(t *testing.T) {
	r := NewFactory().NewStockRecord(nil)

	if err := r.BuyProduct(); !errors.Is(err, ErrStockUnavailable) {
		t.Fatalf("expected ErrStockUnavailable, got %v", err)
	}

	r.AddStock()
	r.AddStock()
	if err := r.BuyProduct(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.StockCount() != 1 || r.NumberOfSales() != 1 {
		t.Fatalf("unexpected counters: stock=%d sales=%d", r.StockCount(), r.NumberOfSales())
	}
}

func TestStockRecord_CountersSaturate(t *testing.T) {
	r := NewFactory().NewStockRecord(nil)
	r.stockCount = math.MaxInt
	r.numberOfSales = math.MaxInt

	r.AddStock()
	if r.StockCount() != math.MaxInt {
		t.Fatalf("stock count wrapped: %d", r.StockCount())
	}

	if err := r.BuyProduct(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.NumberOfSales() != math.MaxInt {
		t.Fatalf("number of sales wrapped: %d", r.NumberOfSales())
	}
}

func TestSaturatingInc(t *testing.T) {
	if saturatingInc(0) != 1 {
		t.Fatal("expected 0 -> 1")
	}
	if saturatingInc(math.MaxInt) != math.MaxInt {
		t.Fatal("expected MaxInt to stay MaxInt")
	}
}

func TestSaturatingArithmetic(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"add", saturatingAdd(2, 3), 5},
		{"add at limit", saturatingAdd(math.MaxInt-1, 1), math.MaxInt},
		{"add overflow", saturatingAdd(math.MaxInt/2+1, math.MaxInt/2+1), math.MaxInt},
		{"mul", saturatingMul(4, 3), 12},
		{"mul by zero", saturatingMul(math.MaxInt, 0), 0},
		{"mul overflow", saturatingMul(math.MaxInt/2+1, 2), math.MaxInt},
		{"mul at limit", saturatingMul(math.MaxInt, 1), math.MaxInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Fatalf("got %d, want %d", tt.got, tt.want)
			}
		})
	}
}

func TestShop_TotalStockCountSaturates(t *testing.T) {
	f := NewFactory()
	shop := f.NewShop()
	for _, code := range []string{"A", "B"} {
		if err := shop.RegisterProduct(f.NewProduct(code, "")); err != nil {
			t.Fatalf("register %s: %v", code, err)
		}
		record, err := shop.record(code)
		if err != nil {
			t.Fatalf("record %s: %v", code, err)
		}
		record.stockCount = math.MaxInt
	}

	if got := shop.TotalStockCount(); got != math.MaxInt {
		t.Fatalf("expected total stock MaxInt, got %d", got)
	}
}
