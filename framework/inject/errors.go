package inject

import "errors"

var (
	// ErrBadFactory is returned when a Provide* method does not have the
	// required factory shape (no parameters, exactly one result).
	ErrBadFactory = errors.New("inject: malformed provider factory")

	// ErrNilProviderResult is returned when a factory method produces a nil
	// value. A provider that cannot construct its dependency is a fatal
	// configuration error, not a skippable one.
	ErrNilProviderResult = errors.New("inject: provider returned nil")

	// ErrBadTarget is returned for an inject-tagged member the engine cannot
	// service: an unexported field, a field of a non-nilable kind, an
	// unknown tag mode, or an Inject* method with a bad signature.
	ErrBadTarget = errors.New("inject: malformed injection target")

	// ErrUnresolvedDependency is returned when a target's required type has
	// no registered instance at injection time.
	ErrUnresolvedDependency = errors.New("inject: no provider registered")
)
