package container

import "errors"

// ErrDuplicateProvider is returned by [Registry.Register] when a second
// instance is registered under an already-present type. The scan that
// triggered the registration is expected to abort.
var ErrDuplicateProvider = errors.New("container: duplicate provider")
