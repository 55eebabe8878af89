package sorting

import "errors"

// ErrIndexOutOfRange is raised only in strict mode, when an algorithm reads a
// slot outside its working copy. Outside strict mode the read is skipped.
var ErrIndexOutOfRange = errors.New("sorting: index out of range")
