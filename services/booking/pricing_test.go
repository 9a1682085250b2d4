package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testPricingConfig() PricingConfig {
	return PricingConfig{
		Rates: map[string]float64{
			"laptops": 800,
			"phones":  300,
			"cables":  40,
		},
		ServiceFees: map[string]float64{
			"data-destruction": 500,
			"certificate":      300,
		},
		PickupFee:           150,
		FreePickupThreshold: 3,
	}
}

func TestComputePricingDeterministic(t *testing.T) {
	cfg := testPricingConfig()
	items := map[string]int{"laptops": 2, "phones": 1}
	services := []string{"data-destruction"}

	first := ComputePricing(items, services, cfg)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputePricing(items, services, cfg))
	}
}

func TestComputePricingNetAmount(t *testing.T) {
	cfg := testPricingConfig()

	// 2 laptops + 1 phone meets the free-pickup threshold of 3.
	quote := ComputePricing(map[string]int{"laptops": 2, "phones": 1}, []string{"data-destruction"}, cfg)
	assert.Equal(t, 1900.0, quote.ItemValue)
	assert.Equal(t, 500.0, quote.ServiceCharges)
	assert.Equal(t, 0.0, quote.PickupFee)
	assert.Equal(t, 1400.0, quote.NetAmount)
}

func TestComputePricingPickupFeeBoundaries(t *testing.T) {
	cfg := testPricingConfig()

	below := ComputePricing(map[string]int{"phones": 2}, nil, cfg)
	assert.Equal(t, 150.0, below.PickupFee)

	atThreshold := ComputePricing(map[string]int{"phones": 3}, nil, cfg)
	assert.Equal(t, 0.0, atThreshold.PickupFee)

	empty := ComputePricing(map[string]int{}, nil, cfg)
	assert.Equal(t, 0.0, empty.PickupFee)
	assert.Equal(t, 0.0, empty.NetAmount)
}

func TestComputePricingNegativeNetKeepsPolarity(t *testing.T) {
	cfg := testPricingConfig()

	// Low-value items plus expensive services: the customer owes money and the
	// net must stay negative rather than clamping at zero.
	quote := ComputePricing(map[string]int{"cables": 1}, []string{"data-destruction", "certificate"}, cfg)
	assert.Equal(t, 40.0, quote.ItemValue)
	assert.Equal(t, 800.0, quote.ServiceCharges)
	assert.Equal(t, 150.0, quote.PickupFee)
	assert.Equal(t, -910.0, quote.NetAmount)
}

func TestComputePricingDeduplicatesServices(t *testing.T) {
	cfg := testPricingConfig()
	quote := ComputePricing(map[string]int{"phones": 3}, []string{"certificate", "certificate"}, cfg)
	assert.Equal(t, 300.0, quote.ServiceCharges)
}

func TestComputePricingIgnoresZeroAndNegativeQuantities(t *testing.T) {
	cfg := testPricingConfig()
	quote := ComputePricing(map[string]int{"laptops": 0, "phones": -2, "cables": 1}, nil, cfg)
	assert.Equal(t, 40.0, quote.ItemValue)
	assert.Equal(t, 150.0, quote.PickupFee)
}

func TestEstimatePoints(t *testing.T) {
	// Catalog points: phones 50, laptops 100.
	assert.Equal(t, 250, EstimatePoints(map[string]int{"phones": 1, "laptops": 2}))
	assert.Equal(t, 0, EstimatePoints(map[string]int{"not-a-category": 4}))
	assert.Equal(t, 0, EstimatePoints(map[string]int{"phones": -1}))
}
