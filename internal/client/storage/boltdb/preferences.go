package boltdb

import (
	"context"
	"encoding/binary"
	"fmt"
	"time"

	"go.etcd.io/bbolt"

	"github.com/iudanet/todosync/internal/client/storage"
	"github.com/iudanet/todosync/internal/models"
)

const (
	keyActiveFilter = "active_filter"
	keyLastRefresh  = "last_refresh"
)

var _ storage.PreferenceStorage = (*Storage)(nil)

// SaveActiveFilter сохраняет выбранный фильтр
func (s *Storage) SaveActiveFilter(ctx context.Context, filter models.Filter) error {
	if _, err := filter.Statuses(); err != nil {
		return err
	}
	return s.put(keyActiveFilter, []byte(filter))
}

// GetActiveFilter возвращает сохраненный фильтр
// Returns storage.ErrPreferenceNotFound if the filter was never saved
func (s *Storage) GetActiveFilter(ctx context.Context) (models.Filter, error) {
	raw, err := s.get(keyActiveFilter)
	if err != nil {
		return "", err
	}

	filter, err := models.ParseFilter(string(raw))
	if err != nil {
		return "", fmt.Errorf("stored filter is corrupted: %w", err)
	}
	return filter, nil
}

// SaveLastRefresh сохраняет время последней успешной загрузки списка (мс UTC)
func (s *Storage) SaveLastRefresh(ctx context.Context, at time.Time) error {
	value := make([]byte, 8)
	binary.BigEndian.PutUint64(value, uint64(at.UTC().UnixMilli()))
	return s.put(keyLastRefresh, value)
}

// GetLastRefresh возвращает время последней успешной загрузки списка
// Returns storage.ErrPreferenceNotFound if the list was never loaded
func (s *Storage) GetLastRefresh(ctx context.Context) (time.Time, error) {
	raw, err := s.get(keyLastRefresh)
	if err != nil {
		return time.Time{}, err
	}
	if len(raw) != 8 {
		return time.Time{}, fmt.Errorf("stored last refresh is corrupted: %d bytes", len(raw))
	}

	return time.UnixMilli(int64(binary.BigEndian.Uint64(raw))).UTC(), nil
}

func (s *Storage) put(key string, value []byte) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPreferences)
		if bucket == nil {
			return fmt.Errorf("preferences bucket not found")
		}

		if err := bucket.Put([]byte(key), value); err != nil {
			return fmt.Errorf("failed to save %s: %w", key, err)
		}
		return nil
	})
}

// get возвращает копию значения: срез bbolt валиден только внутри транзакции
func (s *Storage) get(key string) ([]byte, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var value []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketPreferences)
		if bucket == nil {
			return fmt.Errorf("preferences bucket not found")
		}

		raw := bucket.Get([]byte(key))
		if raw == nil {
			return storage.ErrPreferenceNotFound
		}
		value = append([]byte(nil), raw...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return value, nil
}
