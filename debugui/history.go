package debugui

// History is a fixed-size ring of samples for plotting.
type History struct {
	samples []float32
	offset  int
	count   int
}

func NewHistory(size int) *History {
	if size <= 0 {
		panic("debugui: history size must be positive")
	}
	return &History{samples: make([]float32, size)}
}

func (h *History) Push(v float32) {
	h.samples[h.offset] = v
	h.offset = (h.offset + 1) % len(h.samples)
	h.count = min(h.count+1, len(h.samples))
}

// Ordered returns the samples oldest first, padded with leading zeros
// until the ring fills.
func (h *History) Ordered() []float32 {
	out := make([]float32, len(h.samples))
	copy(out, h.samples[h.offset:])
	copy(out[len(h.samples)-h.offset:], h.samples[:h.offset])
	return out
}

// Average is the mean of the pushed samples, or 0 before the first push.
func (h *History) Average() float32 {
	if h.count == 0 {
		return 0
	}
	var sum float32
	for _, v := range h.samples {
		sum += v
	}
	return sum / float32(h.count)
}

func (h *History) Last() float32 {
	if h.count == 0 {
		return 0
	}
	return h.samples[(h.offset-1+len(h.samples))%len(h.samples)]
}

func (h *History) Len() int { return h.count }
