package booking

type SlotAvailability struct {
	Slot        Slot
	Price       Money
	IsAvailable bool
}

// Availability stamps every canonical slot with its price; a slot is
// unavailable iff it is in occupied.
func Availability(calc PriceCalculator, occupied map[Slot]struct{}) []SlotAvailability {
	slots := AllSlots()
	out := make([]SlotAvailability, 0, len(slots))
	for _, s := range slots {
		_, taken := occupied[s]
		out = append(out, SlotAvailability{
			Slot:        s,
			Price:       calc.PriceOf(s),
			IsAvailable: !taken,
		})
	}
	return out
}
