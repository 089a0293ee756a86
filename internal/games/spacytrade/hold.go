package spacytrade

// Hold is a capacity-limited per-kind inventory. The ship's cargo bay and
// the base depot are both holds. Total() <= Capacity holds for every state
// reachable through the methods below.
type Hold struct {
	Counts   [NumResources]int
	Capacity int
}

// NewHold creates an empty hold.
func NewHold(capacity int) Hold {
	return Hold{Capacity: capacity}
}

// Total returns the number of units held across all kinds.
func (h *Hold) Total() int {
	t := 0
	for _, c := range h.Counts {
		t += c
	}
	return t
}

// Count returns the units of kind k.
func (h *Hold) Count(k Kind) int {
	if !k.IsResource() {
		return 0
	}
	return h.Counts[k]
}

// HasRoom reports whether n more units fit.
func (h *Hold) HasRoom(n int) bool {
	return h.Total()+n <= h.Capacity
}

// Add stores one unit of k if there is room.
func (h *Hold) Add(k Kind) bool {
	if !k.IsResource() || !h.HasRoom(1) {
		return false
	}
	h.Counts[k]++
	return true
}

// Take removes n units of k if that many are present.
func (h *Hold) Take(k Kind, n int) bool {
	if !k.IsResource() || n <= 0 || h.Counts[k] < n {
		return false
	}
	h.Counts[k] -= n
	return true
}

// canHarvest is the gate for picking up a resource: the ship must not be full.
func canHarvest(mobile *Hold) bool {
	return mobile.Total() < mobile.Capacity
}

// canUnload is the gate for emptying the ship into the base. The combined
// total must stay strictly below base capacity.
func canUnload(mobile, base *Hold) bool {
	return base.Total()+mobile.Total() < base.Capacity
}

// unloadInto moves the whole of mobile into base, or nothing at all.
// Returns the number of units moved.
func unloadInto(mobile, base *Hold) int {
	if !canUnload(mobile, base) {
		return 0
	}
	moved := 0
	for k, c := range mobile.Counts {
		base.Counts[k] += c
		moved += c
		mobile.Counts[k] = 0
	}
	return moved
}
