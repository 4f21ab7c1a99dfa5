package design

import (
	"encoding/base64"
	"fmt"
	"log/slog"
)

// DecodeString parses a shareable base64 design string.
func (d *Decoder) DecodeString(s string) (Design, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		slog.Debug("design string rejected", "kind", "InvalidBase64", "err", err)
		return Design{}, fmt.Errorf("%w: %w", ErrInvalidBase64, err)
	}

	out, err := d.Decode(raw)
	if err != nil {
		slog.Debug("design string rejected", "kind", ErrorKind(err), "len", len(raw), "err", err)
		return Design{}, err
	}
	return out, nil
}

// EncodeToString returns the shareable base64 form of d (always version 5).
func EncodeToString(d *Design) string {
	return base64.StdEncoding.EncodeToString(Encode(d))
}
