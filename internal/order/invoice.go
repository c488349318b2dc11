package order

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"time"
)

// newInvoiceNumber generates an id unique within the session,
// e.g. INV-20260827-153045-112-0734.
func newInvoiceNumber() string {
	now := time.Now().UTC()

	datePart := now.Format("20060102-150405")
	millis := now.Nanosecond() / int(time.Millisecond)

	n, err := rand.Int(rand.Reader, big.NewInt(10000))
	if err != nil {
		// fallback: time-based entropy
		n = big.NewInt(now.UnixNano() % 10000)
	}

	return fmt.Sprintf("INV-%s-%03d-%04d", datePart, millis, n.Int64())
}
