package inventory

import "github.com/shopspring/decimal"

// CostCalculator implementa la lógica de costo promedio ponderado (servicio de dominio).
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func CostCalculator(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// Balance saldo físico y valorizado de una asignación (stock y costo_total).
type Balance struct {
	Stock     decimal.Decimal
	TotalCost decimal.Decimal
}

// AverageCost costo unitario implícito del saldo; cero si no hay stock.
func (b Balance) AverageCost() decimal.Decimal {
	if b.Stock.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return b.TotalCost.Div(b.Stock)
}

// Receive suma una entrada. lineCost es el costo total de la línea.
func (b Balance) Receive(qty, lineCost decimal.Decimal) Balance {
	return Balance{
		Stock:     b.Stock.Add(qty),
		TotalCost: b.TotalCost.Add(lineCost),
	}
}

// Issue descuenta una salida valorada a unitCost. Ni stock ni costo quedan negativos.
func (b Balance) Issue(qty, unitCost decimal.Decimal) Balance {
	return Balance{
		Stock:     decimal.Max(decimal.Zero, b.Stock.Sub(qty)),
		TotalCost: decimal.Max(decimal.Zero, b.TotalCost.Sub(qty.Mul(unitCost))),
	}
}

// Revert deshace un ingreso anulado. El stock se descuenta sin piso (queda registrado
// en stock_resultante tal cual); el costo no baja de cero.
func (b Balance) Revert(qty, lineCost decimal.Decimal) Balance {
	return Balance{
		Stock:     b.Stock.Sub(qty),
		TotalCost: decimal.Max(decimal.Zero, b.TotalCost.Sub(lineCost)),
	}
}
