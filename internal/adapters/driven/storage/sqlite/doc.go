// Package sqlite implements the ItemStore driven port on SQLite using
// the pure-Go modernc.org/sqlite driver.
//
// One store handle is opened per process; SQLite's own locking
// serialises writers and no further coordination happens here.
// Schema upgrades are destructive: a user_version mismatch drops and
// recreates the shopping_list table.
package sqlite
