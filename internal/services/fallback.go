package services

import "log"

// attemptOr runs an external call exactly once. On failure it logs the
// condition and returns the documented fallback value so the turn can
// proceed without the failed service.
func attemptOr[T any](name string, fallback T, call func() (T, error)) T {
	result, err := call()
	if err != nil {
		log.Printf("⚠️ %s failed: %v. Using fallback.\n", name, err)
		return fallback
	}
	return result
}
