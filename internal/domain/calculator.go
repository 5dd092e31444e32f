package domain

// Calculator derives the fee, tax and total fields of an invoice from its
// payment amount and rates. Default rates are fixed at construction so the
// engine stays a pure function of its inputs.
type Calculator struct {
	defaultFeeRate Rate
	defaultTaxRate Rate
}

func NewCalculator(defaultFeeRate, defaultTaxRate Rate) *Calculator {
	return &Calculator{
		defaultFeeRate: defaultFeeRate,
		defaultTaxRate: defaultTaxRate,
	}
}

// DerivedFields is the output of one derivation pass. The rates are included
// because absent inputs are resolved to the configured defaults.
type DerivedFields struct {
	FeeRate     Rate
	TaxRate     Rate
	Fee         Money
	TaxAmount   Money
	TotalAmount Money
}

// Derive computes fee, tax and total for a payment amount. A nil rate selects
// the configured default. The steps are fixed:
//
//	fee         = round2(payment_amount * fee_rate)
//	tax_amount  = round2(fee * tax_rate)       -- tax applies to the fee, not the amount
//	total       = payment_amount + fee + tax_amount
//
// The total sums already-rounded components with no further rounding, so
// running Derive again on its own output changes nothing.
func (c *Calculator) Derive(paymentAmount *Money, feeRate, taxRate *Rate) (DerivedFields, error) {
	if paymentAmount == nil {
		return DerivedFields{}, NewMissingAmountError()
	}

	out := DerivedFields{
		FeeRate: c.defaultFeeRate,
		TaxRate: c.defaultTaxRate,
	}
	if feeRate != nil {
		out.FeeRate = *feeRate
	}
	if taxRate != nil {
		out.TaxRate = *taxRate
	}

	fee, err := paymentAmount.Mul(out.FeeRate)
	if err != nil {
		return DerivedFields{}, err
	}
	tax, err := fee.Mul(out.TaxRate)
	if err != nil {
		return DerivedFields{}, err
	}

	out.Fee = fee
	out.TaxAmount = tax
	out.TotalAmount = paymentAmount.Add(fee).Add(tax)
	return out, nil
}
