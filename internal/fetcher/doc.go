// Package fetcher retrieves team schedules from the Momentum scheduling API.
//
// A single GET is issued per call against
// {base}/scheduled-areas/{token}/schedules/optimized?page=1&limit={limit}.
// The token is the only credential and travels in the URL path. Failures are
// reported with the error kinds of the schedule package: *schedule.RequestError
// for transport failures and non-2xx responses, *schedule.DecodeError for bodies
// that are not valid JSON.
package fetcher
