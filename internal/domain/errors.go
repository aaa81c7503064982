package domain

import "errors"

// ErrStorage wraps failures of the underlying key-value persistence.
var ErrStorage = errors.New("bookmark storage failure")

// ErrCorruptData indicates a stored bookmark record that does not decode as a list of ids.
var ErrCorruptData = errors.New("corrupt bookmark record")

var ErrEmptyArticleID = errors.New("empty article id")

var ErrArticleNotFound = errors.New("article not found")
