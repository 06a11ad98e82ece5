package domain

import "errors"

var (
	// ErrProductNotRegistered: штрихкод отсутствует в каталоге магазина или в заказе.
	ErrProductNotRegistered = errors.New("product not registered")
	// ErrBarCodeInUse: товар с таким штрихкодом уже зарегистрирован (или уже есть в заказе).
	ErrBarCodeInUse = errors.New("bar code already in use")
	// ErrStockUnavailable: запрошено больше единиц, чем есть на складе.
	ErrStockUnavailable = errors.New("stock unavailable")
	// ErrOrderAlreadyComplete: попытка изменить завершённый заказ.
	ErrOrderAlreadyComplete = errors.New("order already complete")
	// ErrNotEnoughMoney: у покупателя недостаточно денег для оплаты заказа.
	ErrNotEnoughMoney = errors.New("not enough money")
	// ErrOrderIndexOutOfRange: обращение к заказу покупателя по несуществующему индексу.
	ErrOrderIndexOutOfRange = errors.New("order index out of range")
)

// ErrorReason возвращает стабильную метку ошибки для метрик и логов.
func ErrorReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrProductNotRegistered):
		return "not_registered"
	case errors.Is(err, ErrBarCodeInUse):
		return "bar_code_in_use"
	case errors.Is(err, ErrStockUnavailable):
		return "stock_unavailable"
	case errors.Is(err, ErrOrderAlreadyComplete):
		return "order_complete"
	case errors.Is(err, ErrNotEnoughMoney):
		return "not_enough_money"
	case errors.Is(err, ErrOrderIndexOutOfRange):
		return "index_out_of_range"
	default:
		return "unknown"
	}
}

// IsStockUnavailable проверяет, является ли ошибка нехваткой товара.
func IsStockUnavailable(err error) bool {
	return errors.Is(err, ErrStockUnavailable)
}
