// Package service defines domain service contracts implemented by the infrastructure layer.
package service

import "time"

// Clock supplies the current time. Injecting it keeps OTP expiry decisions
// testable without sleeping.
type Clock interface {
	Now() time.Time
}

// SystemClock is the production Clock backed by time.Now.
type SystemClock struct{}

// Now returns the current wall-clock time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
