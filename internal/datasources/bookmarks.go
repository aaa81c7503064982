package datasources

import "context"

// BookmarkRepository combines all bookmark operations.
type BookmarkRepository interface {
	BookmarkChecker
	BookmarkAdder
	BookmarkRemover
	BookmarkToggler
	BookmarkLister
}

type BookmarkChecker interface {
	IsBookmarked(ctx context.Context, articleID string) (bool, error)
}

type BookmarkAdder interface {
	AddBookmark(ctx context.Context, articleID string) error
}

type BookmarkRemover interface {
	RemoveBookmark(ctx context.Context, articleID string) error
}

// BookmarkToggler flips the bookmark status of an article, returning the new status.
type BookmarkToggler interface {
	ToggleBookmark(ctx context.Context, articleID string) (bool, error)
}

type BookmarkLister interface {
	ListBookmarks(ctx context.Context) ([]string, error)
}
