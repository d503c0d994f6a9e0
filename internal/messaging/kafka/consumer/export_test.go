package consumer

import "time"

var Backoff = backoff

// SetRetryDelays shortens the retry schedule for tests.
func SetRetryDelays(base, max time.Duration) (restore func()) {
	prevBase, prevMax := retryBaseDelay, retryMaxDelay
	retryBaseDelay, retryMaxDelay = base, max
	return func() { retryBaseDelay, retryMaxDelay = prevBase, prevMax }
}
