package update

import "errors"

// Sentinel errors for the check, download, and install phases. Callers match
// with errors.Is; the wrapped detail carries the underlying cause.
var (
	ErrFeedUnavailable = errors.New("release feed unavailable")
	ErrFeedMalformed   = errors.New("release feed response malformed")
	ErrFeedEmpty       = errors.New("release feed has no version tag")

	ErrDownloadFailed = errors.New("download failed")

	ErrInstallFailed = errors.New("install failed")

	// ErrUpdateInFlight is returned when a second flow is requested while
	// one is still running. Flows are never queued.
	ErrUpdateInFlight = errors.New("an update is already in progress")

	// ErrManualUpdateRequired means no automatic artifact matched the
	// current platform; the user has to download the release themselves.
	ErrManualUpdateRequired = errors.New("no automatic update artifact for this platform")
)
