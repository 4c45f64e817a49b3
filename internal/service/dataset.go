package service

import (
	"bytes"
	"context"
	"time"
	"unicode/utf8"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/msb-dashboard/backend/internal/app/appconfig"
	"github.com/msb-dashboard/backend/internal/constant"
	"github.com/msb-dashboard/backend/internal/model"
	"github.com/msb-dashboard/backend/internal/pkg/observability"
	"github.com/msb-dashboard/backend/internal/repo"
)

// Transform post-processes a successfully read dataset. doc is the compacted document
// and env already carries it as Data. A returned error turns env into a failure.
type Transform func(doc []byte, env *model.Envelope) error

type Dataset struct {
	SnapshotRepo repo.Snapshot

	files map[constant.DatasetKind]string
}

func NewDataset(conf *appconfig.Config, snapshotRepo repo.Snapshot) *Dataset {
	return &Dataset{
		SnapshotRepo: snapshotRepo,
		files:        conf.DatasetFiles(),
	}
}

// File returns the configured snapshot file of kind.
func (s *Dataset) File(kind constant.DatasetKind) string {
	return s.files[kind]
}

// Load reads the snapshot file of kind and wraps it into an envelope. It never
// returns a nil envelope and never fails: absent files, malformed documents and
// storage errors all become failure envelopes.
func (s *Dataset) Load(ctx context.Context, kind constant.DatasetKind, transforms ...Transform) *model.Envelope {
	start := time.Now()
	defer func() {
		observability.DatasetLoadDuration.WithLabelValues(string(kind)).Observe(time.Since(start).Seconds())
	}()

	env, outcome := s.load(ctx, kind, transforms)
	observability.DatasetLoad.WithLabelValues(string(kind), outcome).Inc()

	if outcome != observability.OutcomeSuccess {
		log.Ctx(ctx).Warn().
			Str("evt.name", "dataset.load.failed").
			Str("kind", string(kind)).
			Str("outcome", outcome).
			Str("error", env.Error).
			Msg("dataset could not be served")
	}
	return env
}

func (s *Dataset) load(ctx context.Context, kind constant.DatasetKind, transforms []Transform) (*model.Envelope, string) {
	name := s.files[kind]

	fi, err := s.SnapshotRepo.Stat(ctx, name)
	if errors.Is(err, repo.ErrNotExist) {
		return model.Failed(errors.New(constant.DatasetNotFoundMessages[kind])), observability.OutcomeNotFound
	}
	if err != nil {
		return model.Failed(err), observability.OutcomeError
	}

	b, err := s.SnapshotRepo.Read(ctx, name)
	if errors.Is(err, repo.ErrNotExist) {
		// removed between Stat and Read
		return model.Failed(errors.New(constant.DatasetNotFoundMessages[kind])), observability.OutcomeNotFound
	}
	if err != nil {
		return model.Failed(err), observability.OutcomeError
	}

	doc, err := compact(b)
	if err != nil {
		return model.Failed(err), observability.OutcomeMalformed
	}

	env := model.Succeeded(doc, fi.ModTime)
	for _, transform := range transforms {
		if err := transform(doc, env); err != nil {
			env.Fail(err)
			return env, observability.OutcomeMalformed
		}
	}
	return env, observability.OutcomeSuccess
}

// compact validates b as a single JSON document and strips insignificant whitespace.
// Key order is preserved.
func compact(b []byte) (json.RawMessage, error) {
	b = bytes.TrimPrefix(b, []byte("\xEF\xBB\xBF"))
	if len(bytes.TrimSpace(b)) == 0 {
		return nil, ErrEmptyDocument
	}
	if !utf8.Valid(b) {
		return nil, ErrInvalidEncoding
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, nullNonFinite(b)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var nonFiniteLiterals = [][]byte{[]byte("-Infinity"), []byte("Infinity"), []byte("NaN")}

// nullNonFinite replaces the NaN, Infinity and -Infinity literals that Python's json
// module writes by default with null. String contents are left untouched.
func nullNonFinite(b []byte) []byte {
	if !bytes.Contains(b, []byte("NaN")) && !bytes.Contains(b, []byte("Infinity")) {
		return b
	}

	out := make([]byte, 0, len(b))
	inString, escaped := false, false
	for i := 0; i < len(b); i++ {
		c := b[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			out = append(out, c)
			continue
		}
		if c == '"' {
			inString = true
			out = append(out, c)
			continue
		}

		replaced := false
		for _, lit := range nonFiniteLiterals {
			if bytes.HasPrefix(b[i:], lit) {
				out = append(out, "null"...)
				i += len(lit) - 1
				replaced = true
				break
			}
		}
		if !replaced {
			out = append(out, c)
		}
	}
	return out
}
