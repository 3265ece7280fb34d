package folio

import "github.com/shopspring/decimal"

// lot is one unconsumed buy tranche, tracked until fully sold.
type lot struct {
	quantity decimal.Decimal // remaining units
	price    decimal.Decimal // cost per unit
}

type lotQueue []lot

// push appends a new tranche at the back of the queue.
func (q lotQueue) push(quantity, price decimal.Decimal) lotQueue {
	return append(q, lot{quantity: quantity, price: price})
}

// consume matches a sell quantity against the oldest tranches first and
// returns the FIFO cost basis of the matched units, the matched quantity,
// and the remaining queue. A sell larger than the queue stops when the
// queue empties; the caller decides what to do with the unmatched remainder.
func (q lotQueue) consume(quantity decimal.Decimal) (costBasis, matched decimal.Decimal, rest lotQueue) {
	rest = q
	for quantity.IsPositive() && len(rest) > 0 {
		front := rest[0]
		m := decimal.Min(quantity, front.quantity)
		costBasis = costBasis.Add(m.Mul(front.price))
		matched = matched.Add(m)
		quantity = quantity.Sub(m)
		front.quantity = front.quantity.Sub(m)
		if front.quantity.IsZero() {
			rest = rest[1:]
		} else {
			rest[0] = front
		}
	}
	return costBasis, matched, rest
}

// remaining returns the total quantity left in the queue.
func (q lotQueue) remaining() decimal.Decimal {
	var total decimal.Decimal
	for _, l := range q {
		total = total.Add(l.quantity)
	}
	return total
}
