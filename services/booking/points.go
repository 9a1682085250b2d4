package booking

import "ezero/models"

// EstimatePoints sums the reward points earned for the selected items.
// Unknown categories contribute nothing.
func EstimatePoints(items map[string]int) int {
	total := 0
	for id, qty := range items {
		if qty <= 0 {
			continue
		}
		if cat, ok := models.CategoryByID(id); ok {
			total += qty * cat.Points
		}
	}
	return total
}
