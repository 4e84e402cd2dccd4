// Package integrity stamps documents with a tamper-evidence digest.
//
// The digest is the first 16 bytes of SHA-256 over the canonical JSON of a
// snapshot of the document's material fields, hex encoded in upper case. It
// detects alteration; it does not prove who signed.
package integrity

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"strings"
	"time"

	"console_comercial/internal/domain/entities"
)

// DigestLength is the length of every digest string.
const DigestLength = 32

// Snapshot is the canonical view of a document's material fields. Field order
// is fixed by the struct so the JSON encoding is stable.
type Snapshot struct {
	Kind          string  `json:"kind"`
	ClientName    string  `json:"client_name"`
	ClientEmail   string  `json:"client_email"`
	ClientPhone   string  `json:"client_phone"`
	EventType     string  `json:"event_type"`
	EventDate     string  `json:"event_date"`
	EventTime     string  `json:"event_time,omitempty"`
	EventLocation string  `json:"event_location"`
	TotalCents    int64   `json:"total_cents"`
	DownCents     int64   `json:"down_cents,omitempty"`
	DownDate      string  `json:"down_date,omitempty"`
	RemainCents   int64   `json:"remain_cents,omitempty"`
	RemainDate    string  `json:"remain_date,omitempty"`
	Version       int     `json:"version,omitempty"`
	Body          string  `json:"body,omitempty"`
	CreatedAt     string  `json:"created_at"`
	Extra         []Field `json:"extra,omitempty"`
}

// Field is an additional named value, used by e-mail snapshots.
type Field struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Digest hashes a snapshot. The same snapshot always yields the same digest.
func Digest(s Snapshot) string {
	b, err := json.Marshal(s)
	if err != nil {
		// Snapshot only holds strings and integers.
		panic("integrity: snapshot not encodable: " + err.Error())
	}
	sum := sha256.Sum256(b)
	return strings.ToUpper(hex.EncodeToString(sum[:DigestLength/2]))
}

// Verify recomputes the digest and compares it in constant time.
func Verify(s Snapshot, digest string) bool {
	want := Digest(s)
	got := strings.ToUpper(strings.TrimSpace(digest))
	return subtle.ConstantTimeCompare([]byte(want), []byte(got)) == 1
}

func ContractSnapshot(c entities.Contract) Snapshot {
	return Snapshot{
		Kind:          "contract",
		ClientName:    c.ClientName,
		ClientEmail:   entities.NormalizeEmail(c.ClientEmail),
		ClientPhone:   c.ClientPhone,
		EventType:     c.EventType,
		EventDate:     entities.DateKey(c.EventDate),
		EventTime:     c.EventTime,
		EventLocation: c.EventLocation,
		TotalCents:    cents(c.TotalPrice),
		DownCents:     cents(c.DownPayment),
		DownDate:      entities.DateKey(c.DownPaymentDate),
		RemainCents:   cents(c.RemainingAmount),
		RemainDate:    entities.DateKey(c.RemainingDueDate),
		Version:       c.Version,
		Body:          c.Body,
		CreatedAt:     timestamp(c.CreatedAt),
	}
}

func ProposalSnapshot(p entities.Proposal) Snapshot {
	return Snapshot{
		Kind:          "proposal",
		ClientName:    p.ClientName,
		ClientEmail:   entities.NormalizeEmail(p.ClientEmail),
		ClientPhone:   p.ClientPhone,
		EventType:     p.EventType,
		EventDate:     entities.DateKey(p.EventDate),
		EventLocation: p.EventLocation,
		TotalCents:    cents(p.TotalPrice),
		Body:          p.Body,
		CreatedAt:     timestamp(p.CreatedAt),
	}
}

// EmailSnapshot covers an outbound message: recipient, subject and body.
func EmailSnapshot(to, subject, body string, sentAt time.Time) Snapshot {
	return Snapshot{
		Kind:        "email",
		ClientEmail: entities.NormalizeEmail(to),
		Body:        body,
		CreatedAt:   timestamp(sentAt),
		Extra:       []Field{{Name: "subject", Value: subject}},
	}
}

func ContractDigest(c entities.Contract) string {
	return Digest(ContractSnapshot(c))
}

func ProposalDigest(p entities.Proposal) string {
	return Digest(ProposalSnapshot(p))
}

func cents(v float64) int64 {
	if v >= 0 {
		return int64(v*100 + 0.5)
	}
	return int64(v*100 - 0.5)
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339Nano)
}
