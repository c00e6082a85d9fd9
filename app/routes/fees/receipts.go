package fees

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// GenerateReceiptNumber builds a receipt number of the form
// RCP<yyyymmddHHMMSS><12 hex chars>. The 48-bit random suffix keeps numbers
// generated in the same second apart; the receipts table still carries a
// uniqueness constraint as the final guard.
func GenerateReceiptNumber() string {
	buf := make([]byte, 6)
	rand.Read(buf)
	return "RCP" + time.Now().Format("20060102150405") + hex.EncodeToString(buf)
}
