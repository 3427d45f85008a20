package supervision

import "errors"

var (
	// ErrNotFound is returned when no request or relationship matches the
	// given id (for accept, the request must also still be pending).
	ErrNotFound = errors.New("request or relationship not found")

	// ErrWrongTarget is returned when a device tries to accept or reject a
	// request addressed to a different device.
	ErrWrongTarget = errors.New("request is not addressed to this device")

	// ErrNotAuthorized is returned when a device that is not in supervisor
	// mode tries to create a supervision request.
	ErrNotAuthorized = errors.New("only supervisor devices can send supervision requests")
)
