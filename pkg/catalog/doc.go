// Package catalog records the outcome of AML parse runs.
//
// Every file a scan touches produces a Record: where the file was, whether
// it parsed, how large the resulting tree was and how long parsing took.
// Records are persisted through the storage.Storage interface, which has an
// in-memory backend for tests and a SQLite backend for durable catalogs,
// and are pruned on a schedule by the retention package.
package catalog
