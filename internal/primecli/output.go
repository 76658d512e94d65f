package primecli

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"go.llib.dev/frameless/pkg/jsonkit"
)

const (
	FormatText = "text"
	FormatJSON = "json"
	FormatTOML = "toml"
)

// Report is the result of a command.
type Report struct {
	N      int      `json:"n,omitempty" toml:"n,omitempty"`
	Limit  uint64   `json:"limit,omitempty" toml:"limit,omitempty"`
	Primes []uint64 `json:"primes" toml:"primes"`
	// Exhausted tells that the integer range ran out before the request could be fully served.
	Exhausted bool `json:"exhausted" toml:"exhausted"`
}

// Encode writes the report to w in the given format.
// Unknown formats fall back to FormatText.
func (r Report) Encode(w io.Writer, format string) error {
	switch format {
	case FormatJSON:
		return jsonkit.NewEncoder[Report](w).Encode(r)
	case FormatTOML:
		return toml.NewEncoder(w).Encode(r)
	default:
		for _, p := range r.Primes {
			if _, err := fmt.Fprintln(w, p); err != nil {
				return err
			}
		}
		return nil
	}
}
