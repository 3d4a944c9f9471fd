// Package rate implements the Redis-backed fixed-window counter used to
// throttle failed login attempts per identifier and per client IP.
package rate
