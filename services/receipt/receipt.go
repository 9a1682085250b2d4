package receipt

import (
	"fmt"
	"strings"

	"ezero/models"
)

// Renderer produces a printable receipt for a confirmed pickup. Rendering
// failures never affect the stored booking.
type Renderer interface {
	Render(b *models.PickupBooking) ([]byte, error)
}

// TextRenderer writes a plain-text receipt.
type TextRenderer struct{}

// NewTextRenderer returns the default receipt renderer.
func NewTextRenderer() *TextRenderer {
	return &TextRenderer{}
}

func (r *TextRenderer) Render(b *models.PickupBooking) ([]byte, error) {
	if b == nil {
		return nil, fmt.Errorf("no booking to render")
	}

	var sb strings.Builder
	line := strings.Repeat("=", 48)

	fmt.Fprintln(&sb, line)
	fmt.Fprintln(&sb, "        E-ZERO E-WASTE PICKUP RECEIPT")
	fmt.Fprintln(&sb, line)
	fmt.Fprintf(&sb, "Booking ID : %s\n", b.ID)
	fmt.Fprintf(&sb, "Booked on  : %s\n", b.CreatedAt.Format("Mon, 2 Jan 2006 15:04"))
	fmt.Fprintf(&sb, "Status     : %s\n", b.Status)

	slotLabel := b.Schedule.TimeSlotID
	if slot, ok := models.SlotByID(b.Schedule.TimeSlotID); ok {
		slotLabel = slot.Label
	}
	fmt.Fprintf(&sb, "Pickup     : %s, %s\n", b.Schedule.Date, slotLabel)
	fmt.Fprintf(&sb, "Contact    : %s (%s)\n", b.Contact.Name, b.Contact.Phone)
	fmt.Fprintf(&sb, "Address    : %s, %s %s\n", b.Contact.Address, b.Contact.City, b.Contact.Pincode)

	fmt.Fprintln(&sb, strings.Repeat("-", 48))
	fmt.Fprintln(&sb, "Items")
	for id, qty := range b.Items {
		name := id
		if cat, ok := models.CategoryByID(id); ok {
			name = cat.Name
		}
		fmt.Fprintf(&sb, "  %-28s x%-4d\n", name, qty)
	}
	if len(b.Services) > 0 {
		fmt.Fprintln(&sb, "Services")
		for _, id := range b.Services {
			name := id
			if svc, ok := models.ServiceByID(id); ok {
				name = svc.Name
			}
			fmt.Fprintf(&sb, "  %s\n", name)
		}
	}

	fmt.Fprintln(&sb, strings.Repeat("-", 48))
	fmt.Fprintf(&sb, "Item value       : %10.2f INR\n", b.Pricing.ItemValue)
	fmt.Fprintf(&sb, "Service charges  : %10.2f INR\n", b.Pricing.ServiceCharges)
	fmt.Fprintf(&sb, "Pickup fee       : %10.2f INR\n", b.Pricing.PickupFee)
	if b.Pricing.NetAmount >= 0 {
		fmt.Fprintf(&sb, "We pay you       : %10.2f INR\n", b.Pricing.NetAmount)
	} else {
		fmt.Fprintf(&sb, "You pay          : %10.2f INR\n", -b.Pricing.NetAmount)
	}
	fmt.Fprintf(&sb, "Reward points    : %10d\n", b.EarnedPoints)
	fmt.Fprintln(&sb, line)
	fmt.Fprintln(&sb, "Thank you for recycling responsibly.")

	return []byte(sb.String()), nil
}
