// Package scan turns directories of firmware dumps into catalog records.
//
// The Scanner walks roots, decodes every file with a matching extension and
// stores one record per file under a shared run ID. The Watcher keeps a
// directory under observation and re-parses files as they change, with
// debouncing so write bursts trigger one re-parse. The Rescanner adds
// optional cron-scheduled full re-scans for watch mode.
package scan
