// File: services/booking/reference.go
package booking

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"sync/atomic"
	"time"
)

const base36Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ReferenceGenerator produces human-facing booking references of the form
// ADMAS-YYMM-XXXNNN: year/month, 3 random base36 chars, and a 3-digit
// zero-padded sequence. Two references generated in the same minute differ
// in at least the random/sequence suffix.
type ReferenceGenerator struct {
	seq uint64
}

// Next returns a fresh reference for the given time.
func (g *ReferenceGenerator) Next(now time.Time) string {
	var random strings.Builder
	for i := 0; i < 3; i++ {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(base36Chars))))
		if err != nil {
			// crypto/rand failing means the process is in serious trouble;
			// fall back to the sequence so references stay unique-ish.
			random.WriteByte(base36Chars[int(atomic.LoadUint64(&g.seq))%len(base36Chars)])
			continue
		}
		random.WriteByte(base36Chars[n.Int64()])
	}

	seq := atomic.AddUint64(&g.seq, 1) % 1000
	return fmt.Sprintf("ADMAS-%s-%s%03d", now.Format("0601"), random.String(), seq)
}
