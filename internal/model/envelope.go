package model

import (
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/msb-dashboard/backend/internal/constant"
)

// Envelope is the body of every dataset endpoint. Data is present iff Success,
// Error iff !Success. Extra fields set through Set/SetRaw are flattened into the
// top-level object in insertion order.
type Envelope struct {
	Success      bool            `json:"success"`
	Data         json.RawMessage `json:"data,omitempty" swaggertype:"object"`
	Error        string          `json:"error,omitempty"`
	LastModified string          `json:"last_modified,omitempty" example:"2024-05-01 08:30:00"`

	extras []extraField
}

type extraField struct {
	key string
	raw json.RawMessage
}

func Succeeded(data json.RawMessage, modTime time.Time) *Envelope {
	return &Envelope{
		Success:      true,
		Data:         data,
		LastModified: modTime.Local().Format(constant.LastModifiedLayout),
	}
}

func Failed(err error) *Envelope {
	return &Envelope{Error: err.Error()}
}

// Fail turns e into a failure envelope, dropping data and timestamp but keeping extras.
func (e *Envelope) Fail(err error) {
	e.Success = false
	e.Data = nil
	e.LastModified = ""
	e.Error = err.Error()
}

// SetRaw sets a top-level field to an already encoded JSON value, replacing any
// previous value under the same key.
func (e *Envelope) SetRaw(key string, raw json.RawMessage) {
	for i := range e.extras {
		if e.extras[i].key == key {
			e.extras[i].raw = raw
			return
		}
	}
	e.extras = append(e.extras, extraField{key: key, raw: raw})
}

func (e *Envelope) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrapf(err, "failed to encode envelope field %q", key)
	}
	e.SetRaw(key, raw)
	return nil
}

// SetFields flattens every top-level field of v, which must encode to a JSON object.
func (e *Envelope) SetFields(v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return errors.Wrap(err, "failed to encode envelope fields")
	}
	res := gjson.ParseBytes(raw)
	if !res.IsObject() {
		return errors.New("envelope fields must encode to a JSON object")
	}
	res.ForEach(func(key, value gjson.Result) bool {
		e.SetRaw(key.String(), json.RawMessage(value.Raw))
		return true
	})
	return nil
}

// Extra returns the raw value of an extra field, or nil if unset.
func (e *Envelope) Extra(key string) json.RawMessage {
	for _, f := range e.extras {
		if f.key == key {
			return f.raw
		}
	}
	return nil
}

func (e Envelope) MarshalJSON() ([]byte, error) {
	type plain Envelope
	b, err := json.Marshal(plain(e))
	if err != nil {
		return nil, err
	}
	for _, f := range e.extras {
		b, err = sjson.SetRawBytes(b, escapePathKey(f.key), f.raw)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to flatten envelope field %q", f.key)
		}
	}
	return b, nil
}

var pathEscaper = []byte{'.', '*', '?', '|', '#', '@', '\\'}

func escapePathKey(key string) string {
	out := make([]byte, 0, len(key))
	for i := 0; i < len(key); i++ {
		for _, c := range pathEscaper {
			if key[i] == c {
				out = append(out, '\\')
				break
			}
		}
		out = append(out, key[i])
	}
	return string(out)
}
