// Package schedule provides the types and selection logic for team schedules
// ("escalas") returned by the Momentum scheduling API.
//
// Items are decoded once per invocation and never mutated. Each Item keeps the
// exact JSON object it was decoded from, so re-encoding an Item reproduces every
// field the API sent in its original key order, including fields this package
// does not model.
package schedule
