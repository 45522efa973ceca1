package sprite

import "sync"

// FramesPerSet is the number of frames in each running set.
const FramesPerSet = 12

// Stride cycles per view. Odd and even bibs get different kits so packed
// runners stay distinguishable.
var (
	sideCycle  = [2][]rune{[]rune("kKλK"), []rune("hHλH")}
	backCycle  = [2][]rune{[]rune("ʌΛAΛ"), []rune("ʌΛΠΛ")}
	frontCycle = [2][]rune{[]rune("YVYv"), []rune("ΨVΨv")}
)

const (
	standing = 'I'
	resting  = 'i'
)

// ASCIIProvider renders runners as single terminal glyphs.
// Color is applied by the renderer, so sets depend only on the kit.
type ASCIIProvider struct {
	mu    sync.Mutex
	cache map[int]FrameSet
}

// NewASCIIProvider creates a provider with an empty cache.
func NewASCIIProvider() *ASCIIProvider {
	return &ASCIIProvider{cache: make(map[int]FrameSet)}
}

// Frames returns the frame set for a runner.
func (p *ASCIIProvider) Frames(color string, id int) FrameSet {
	kit := id & 1

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cache == nil {
		p.cache = make(map[int]FrameSet)
	}
	if set, ok := p.cache[kit]; ok {
		return set
	}

	set := FrameSet{
		Side:    cycle(sideCycle[kit]),
		Back:    cycle(backCycle[kit]),
		Front:   cycle(frontCycle[kit]),
		Resting: []Image{Image(resting)},
	}
	p.cache[kit] = set
	return set
}

func cycle(stride []rune) []Image {
	frames := make([]Image, FramesPerSet)
	frames[0] = Image(standing)
	for i := 1; i < FramesPerSet; i++ {
		frames[i] = Image(stride[(i-1)%len(stride)])
	}
	return frames
}
