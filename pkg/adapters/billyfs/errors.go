package billyfs

import "errors"

var errNotDir = errors.New("not a directory")
