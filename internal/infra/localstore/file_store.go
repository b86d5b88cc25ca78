package localstore

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const fileMode = 0o644

// fileStore implements Store with one JSON file per key under a data
// directory. Writes are atomic (temp file + rename) and serialized by a
// single mutex; there is exactly one mutator process.
type fileStore struct {
	dir       string
	mu        sync.Mutex
	logger    *slog.Logger
	publisher service.EventPublisher
}

// FileStoreParams holds dependencies for the file store, injected by Fx.
type FileStoreParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Publisher service.EventPublisher
}

// New creates the file-backed store, ensuring the data directory exists.
func New(params FileStoreParams) (Store, error) {
	dir := params.Config.Store.Path
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create store directory")
	}

	return &fileStore{
		dir:       dir,
		logger:    params.Logger,
		publisher: params.Publisher,
	}, nil
}

func (s *fileStore) Get(ctx context.Context, key string, out any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return ErrKeyNotFound
		}

		return errors.Wrapf(err, "failed to read store key %s", key)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "failed to decode store key %s", key)
	}

	return nil
}

func (s *fileStore) Put(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.Wrapf(err, "failed to encode store key %s", key)
	}

	s.mu.Lock()
	err = s.writeAtomic(key, raw)
	s.mu.Unlock()
	if err != nil {
		return err
	}

	s.announce(ctx, key, service.StoreOpPut)

	return nil
}

func (s *fileStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	err := os.Remove(s.path(key))
	s.mu.Unlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.Wrapf(err, "failed to delete store key %s", key)
	}

	s.announce(ctx, key, service.StoreOpDelete)

	return nil
}

// writeAtomic replaces the key's file via temp file + rename so readers never
// observe a partial document.
func (s *fileStore) writeAtomic(key string, raw []byte) error {
	target := s.path(key)

	tmp, err := os.CreateTemp(s.dir, filename(key)+".tmp-*")
	if err != nil {
		return errors.Wrapf(err, "failed to create temp file for key %s", key)
	}

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to write store key %s", key)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to close temp file for key %s", key)
	}

	if err := os.Chmod(tmp.Name(), fileMode); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to chmod temp file for key %s", key)
	}

	if err := os.Rename(tmp.Name(), target); err != nil {
		os.Remove(tmp.Name())

		return errors.Wrapf(err, "failed to replace store key %s", key)
	}

	return nil
}

// announce publishes the store-changed event. Publishing is best effort: a
// failed broadcast never fails the write that triggered it.
func (s *fileStore) announce(ctx context.Context, key, op string) {
	if s.publisher == nil {
		return
	}

	event := &service.StoreEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Key:        key,
		Op:         op,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishStoreEvent(ctx, event); err != nil {
		s.logger.Warn("Failed to publish store event",
			slog.String("key", key),
			slog.String("op", op),
			slog.Any("error", err),
		)
	}
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, filename(key)+".json")
}

// filename maps a store key to a safe file name. Keys embed user-supplied
// slugs and emails, so anything outside a conservative set is replaced.
func filename(key string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.' || r == '@':
			return r
		default:
			return '-'
		}
	}, key)
}
