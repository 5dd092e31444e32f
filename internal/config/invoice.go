package config

import (
	"fmt"

	"github.com/shiharai/invoice-service/internal/domain"
)

// Calculator parses the configured default rates and builds the derivation
// engine. The rates are validated here, at startup, so a typo in the
// environment fails the boot instead of a request.
func (c *InvoiceConfig) Calculator() (*domain.Calculator, error) {
	feeRate, err := domain.NewRate(c.DefaultFeeRate)
	if err != nil {
		return nil, fmt.Errorf("parse default fee rate %q: %w", c.DefaultFeeRate, err)
	}
	taxRate, err := domain.NewRate(c.DefaultTaxRate)
	if err != nil {
		return nil, fmt.Errorf("parse default tax rate %q: %w", c.DefaultTaxRate, err)
	}
	return domain.NewCalculator(feeRate, taxRate), nil
}
