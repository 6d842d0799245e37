// internal/snapshot/encoder.go
package snapshot

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
)

// Форматы вывода снимков
const (
	FormatJSON    = "json"
	FormatMsgpack = "msgpack"
)

// Encoder пишет снимки в поток один за другим.
type Encoder interface {
	Encode(f Frame) error
}

// NewEncoder возвращает кодировщик для формата format.
func NewEncoder(format string, w io.Writer) (Encoder, error) {
	switch format {
	case FormatJSON:
		return &jsonEncoder{enc: json.NewEncoder(w)}, nil
	case FormatMsgpack:
		return &msgpackEncoder{enc: msgpack.NewEncoder(w)}, nil
	default:
		return nil, fmt.Errorf("unknown snapshot format %q", format)
	}
}

// jsonEncoder пишет JSON Lines: один снимок на строку
type jsonEncoder struct {
	enc *json.Encoder
}

func (e *jsonEncoder) Encode(f Frame) error {
	if err := e.enc.Encode(f); err != nil {
		return fmt.Errorf("failed to encode frame %d as json: %w", f.Tick, err)
	}
	return nil
}

// msgpackEncoder пишет снимки подряд без разделителей, читать через msgpack.Decoder
type msgpackEncoder struct {
	enc *msgpack.Encoder
}

func (e *msgpackEncoder) Encode(f Frame) error {
	if err := e.enc.Encode(&f); err != nil {
		return fmt.Errorf("failed to encode frame %d as msgpack: %w", f.Tick, err)
	}
	return nil
}
