// Package bookmarks owns the persisted set of bookmarked article ids.
//
// The set is stored as a JSON array of strings under a single key of a
// key-value store. Nothing else may read or write that key: every
// mutation is a read-modify-write of the whole record, and Store
// serializes those cycles so concurrent callers cannot lose updates.
package bookmarks

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"sync"

	"github.com/jbeshir/newspulse/internal/datasources"
	"github.com/jbeshir/newspulse/internal/domain"
)

// StorageKey is the key the bookmark record is persisted under.
// Changing it orphans every existing user's saved bookmarks.
const StorageKey = "bookmarks"

var _ datasources.BookmarkRepository = (*Store)(nil)

type Store struct {
	mu sync.Mutex
	kv datasources.KeyValueStore
}

func New(kv datasources.KeyValueStore) *Store {
	return &Store{kv: kv}
}

func (s *Store) IsBookmarked(ctx context.Context, articleID string) (bool, error) {
	if articleID == "" {
		return false, domain.ErrEmptyArticleID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(set.ids, articleID), nil
}

// AddBookmark appends articleID to the set. Adding an id already present writes nothing.
func (s *Store) AddBookmark(ctx context.Context, articleID string) error {
	if articleID == "" {
		return domain.ErrEmptyArticleID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(ctx)
	if err != nil {
		return err
	}
	if slices.Contains(set.ids, articleID) {
		return nil
	}

	set.ids = append(set.ids, articleID)
	return s.save(ctx, set)
}

// RemoveBookmark filters articleID out of the set and writes the result back, even if it was absent.
func (s *Store) RemoveBookmark(ctx context.Context, articleID string) error {
	if articleID == "" {
		return domain.ErrEmptyArticleID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(ctx)
	if err != nil {
		return err
	}

	set.ids = slices.DeleteFunc(set.ids, func(id string) bool { return id == articleID })
	return s.save(ctx, set)
}

func (s *Store) ToggleBookmark(ctx context.Context, articleID string) (bool, error) {
	if articleID == "" {
		return false, domain.ErrEmptyArticleID
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(ctx)
	if err != nil {
		return false, err
	}

	bookmarked := !slices.Contains(set.ids, articleID)
	if bookmarked {
		set.ids = append(set.ids, articleID)
	} else {
		set.ids = slices.DeleteFunc(set.ids, func(id string) bool { return id == articleID })
	}

	if err := s.save(ctx, set); err != nil {
		return !bookmarked, err
	}
	return bookmarked, nil
}

// ListBookmarks returns the bookmarked ids in the order they are stored.
func (s *Store) ListBookmarks(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	set, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return slices.Clone(set.ids), nil
}

type bookmarkSet struct {
	ids []string

	// corrupt marks a set synthesized from an undecodable record.
	corrupt bool
}

// load reads the current set. An absent record is an empty set, and so is a
// corrupt one: reads fail open, with a warning logged.
func (s *Store) load(ctx context.Context) (bookmarkSet, error) {
	raw, found, err := s.kv.Get(ctx, StorageKey)
	if err != nil {
		return bookmarkSet{}, fmt.Errorf("%w: reading bookmarks: %w", domain.ErrStorage, err)
	}
	if !found {
		return bookmarkSet{}, nil
	}

	ids, err := decode(raw)
	if err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "bookmark record unreadable, treating as empty",
			"error", err, "record_length", len(raw))
		return bookmarkSet{corrupt: true}, nil
	}

	return bookmarkSet{ids: ids}, nil
}

func (s *Store) save(ctx context.Context, set bookmarkSet) error {
	if set.corrupt {
		logger := domain.LoggerFromContext(ctx)
		logger.WarnContext(ctx, "overwriting unreadable bookmark record", "bookmark_count", len(set.ids))
	}

	raw, err := encode(set.ids)
	if err != nil {
		return err
	}

	if err := s.kv.Set(ctx, StorageKey, raw); err != nil {
		return fmt.Errorf("%w: writing bookmarks: %w", domain.ErrStorage, err)
	}
	return nil
}

func decode(raw string) ([]string, error) {
	var ids []string
	if err := json.Unmarshal([]byte(raw), &ids); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrCorruptData, err)
	}

	// Records written by older clients may already hold duplicates.
	deduped := make([]string, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(deduped, id) {
			deduped = append(deduped, id)
		}
	}
	return deduped, nil
}

func encode(ids []string) (string, error) {
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return "", fmt.Errorf("encoding bookmarks: %w", err)
	}
	return string(data), nil
}
