// Package cli implements the command-line interface for escala.
//
// The cli package provides the Cobra-based root command, the text and JSON
// output writers, and the mapping from error kinds to process exit codes. It
// coordinates the config, fetcher, schedule and notifier packages to fetch the
// upcoming events of a scheduled area and print them.
package cli
