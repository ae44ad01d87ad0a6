package donation

import (
	"crypto/rand"
	"math/big"
	"strconv"
	"strings"
	"time"
)

const (
	txnPrefix     = "TXN"
	txnSuffixLen  = 9
	base36Charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// NewTransactionID returns "TXN" followed by the unix time in milliseconds
// and nine random base-36 characters, e.g. TXN1718000000000K3F9Q0ZLA.
func NewTransactionID(now time.Time) (string, error) {
	var b strings.Builder
	b.Grow(len(txnPrefix) + 13 + txnSuffixLen)
	b.WriteString(txnPrefix)
	b.WriteString(strconv.FormatInt(now.UnixMilli(), 10))

	max := big.NewInt(int64(len(base36Charset)))
	for i := 0; i < txnSuffixLen; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		b.WriteByte(base36Charset[n.Int64()])
	}
	return b.String(), nil
}
