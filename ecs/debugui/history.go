package debugui

// FrameHistory is a fixed-size ring of frame times in milliseconds.
type FrameHistory struct {
	samples []float32
	next    int
	filled  int
}

func NewFrameHistory(size int) *FrameHistory {
	return &FrameHistory{samples: make([]float32, max(size, 1))}
}

// Add records one frame time.
func (h *FrameHistory) Add(ms float32) {
	h.samples[h.next] = ms
	h.next = (h.next + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// Average returns the mean over recorded samples, or zero when empty.
func (h *FrameHistory) Average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, s := range h.samples[:h.filled] {
		sum += s
	}
	return sum / float32(h.filled)
}

// Samples returns the backing ring, oldest sample not necessarily first.
func (h *FrameHistory) Samples() []float32 {
	return h.samples
}

// Len returns the number of recorded samples, at most the ring size.
func (h *FrameHistory) Len() int {
	return h.filled
}
