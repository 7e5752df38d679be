package dice

import (
	"crypto/rand"
	"math/big"
	"sync"
)

// cryptoSource implements Source using crypto/rand.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.
//
// Postcondition: Every value returned by Intn is in [0, n).
func NewCryptoSource() Source {
	return &cryptoSource{}
}

// Intn returns a cryptographically secure random int in [0, n).
//
// Precondition: n > 0. Panics with "dice: Intn called with n <= 0" if n <= 0.
func (c *cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	val, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic("dice: crypto/rand failure: " + err.Error())
	}
	return int(val.Int64())
}

// FixedSource replays a fixed sequence of faces, cycling when exhausted.
// It lets callers reproduce a known hand through RollHand.
type FixedSource struct {
	mu    sync.Mutex
	faces []int
	next  int
}

// NewFixedSource returns a Source that yields faces in order.
//
// Precondition: faces must be non-empty and each in [MinFace, MaxFace].
func NewFixedSource(faces ...int) *FixedSource {
	if len(faces) == 0 {
		panic("dice: NewFixedSource precondition violated: faces must be non-empty")
	}
	for _, f := range faces {
		if f < MinFace || f > MaxFace {
			panic("dice: NewFixedSource precondition violated: face out of range")
		}
	}
	return &FixedSource{faces: append([]int(nil), faces...)}
}

// Intn returns the next face minus one, reduced modulo n.
func (f *FixedSource) Intn(n int) int {
	if n <= 0 {
		panic("dice: Intn called with n <= 0")
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	v := f.faces[f.next] - MinFace
	f.next = (f.next + 1) % len(f.faces)
	return v % n
}
