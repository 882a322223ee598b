package object

import "errors"

// ErrMissingObject is returned by Store.GetBlob when no blob exists for
// the requested hash (spec §4.2).
var ErrMissingObject = errors.New("missing object")

// ErrNoSuchCommit is returned by Store.GetCommit when no commit exists
// for the requested hash (spec §4.2).
var ErrNoSuchCommit = errors.New("No commit with that id exists.")
