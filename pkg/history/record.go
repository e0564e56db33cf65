package history

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/amirasaad/fxcli/pkg/money"
)

// DateLayout is the on-disk timestamp format, local wall-clock time.
const DateLayout = "2006-01-02 15:04:05"

// Timestamp is a time persisted with DateLayout.
type Timestamp struct {
	time.Time
}

// MarshalJSON implements json.Marshaler interface.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Format(DateLayout))
}

// UnmarshalJSON implements json.Unmarshaler interface.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return fmt.Errorf("invalid history date %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// String returns the timestamp in DateLayout.
func (t Timestamp) String() string {
	return t.Format(DateLayout)
}

// Record is a single completed conversion.
type Record struct {
	Date   Timestamp  `json:"date"`
	From   money.Code `json:"from"`
	To     money.Code `json:"to"`
	Amount float64    `json:"amount"`
	Result float64    `json:"result"`
}

// NewRecord builds a record stamped at the given time, truncated to seconds
// since that is all the file keeps.
func NewRecord(at time.Time, from, to money.Code, amount, result float64) Record {
	return Record{
		Date:   Timestamp{Time: at.Truncate(time.Second)},
		From:   from,
		To:     to,
		Amount: amount,
		Result: result,
	}
}
