package domain

import "github.com/shopspring/decimal"

var (
	freeShippingThreshold = decimal.NewFromInt(100)
	flatShippingFee       = decimal.NewFromInt(10)
	taxRate               = decimal.RequireFromString("0.08")
)

// ComputeCharges 根据商品小计计算运费、税费与总计。
// 小计超过免邮门槛时运费为零，税率固定 8%，金额不做中间舍入。
func ComputeCharges(subtotal decimal.Decimal) (shipping, tax, total decimal.Decimal) {
	shipping = flatShippingFee
	if subtotal.GreaterThan(freeShippingThreshold) {
		shipping = decimal.Zero
	}
	tax = subtotal.Mul(taxRate)
	total = subtotal.Add(shipping).Add(tax)
	return shipping, tax, total
}
