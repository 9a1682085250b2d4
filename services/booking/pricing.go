package booking

import (
	"ezero/config"
	"ezero/models"
)

// PricingConfig carries the business-configurable rate schedule. The payout
// model is reversed from a cart: E-Zero pays for items, the customer pays for
// add-on services and (below the free-pickup threshold) the pickup fee.
type PricingConfig struct {
	Rates               map[string]float64
	ServiceFees         map[string]float64
	PickupFee           float64
	FreePickupThreshold int
}

// DefaultPricingConfig builds the schedule from the catalog with the standard
// pickup fee (150) and free-pickup threshold (5 items).
func DefaultPricingConfig() PricingConfig {
	rates := make(map[string]float64)
	for _, c := range models.ItemCategories() {
		rates[c.ID] = c.Rate
	}
	fees := make(map[string]float64)
	for _, s := range models.AddonServices() {
		fees[s.ID] = s.Fee
	}
	return PricingConfig{
		Rates:               rates,
		ServiceFees:         fees,
		PickupFee:           150,
		FreePickupThreshold: 5,
	}
}

// LoadPricingConfig applies the configured fee/threshold overrides on top of
// the defaults.
func LoadPricingConfig() PricingConfig {
	cfg := DefaultPricingConfig()
	if config.AppConfig.PickupFee > 0 {
		cfg.PickupFee = config.AppConfig.PickupFee
	}
	if config.AppConfig.FreePickupThreshold > 0 {
		cfg.FreePickupThreshold = config.AppConfig.FreePickupThreshold
	}
	return cfg
}

// ComputePricing returns the payout estimate for the given selection. It is
// deterministic and side-effect-free. NetAmount keeps the payout polarity:
// positive means E-Zero pays the customer.
func ComputePricing(items map[string]int, services []string, cfg PricingConfig) models.Quote {
	var itemValue float64
	totalQty := 0
	for id, qty := range items {
		if qty <= 0 {
			continue
		}
		itemValue += float64(qty) * cfg.Rates[id]
		totalQty += qty
	}

	var serviceCharges float64
	seen := make(map[string]bool, len(services))
	for _, id := range services {
		if seen[id] {
			continue
		}
		seen[id] = true
		serviceCharges += cfg.ServiceFees[id]
	}

	var pickupFee float64
	if totalQty > 0 && totalQty < cfg.FreePickupThreshold {
		pickupFee = cfg.PickupFee
	}

	return models.Quote{
		ItemValue:      itemValue,
		ServiceCharges: serviceCharges,
		PickupFee:      pickupFee,
		NetAmount:      itemValue - serviceCharges - pickupFee,
	}
}
