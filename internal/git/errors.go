package git

import "errors"

// Repo errors
var (
	ErrNotRepository = errors.New("target is not inside a git repository")
)
