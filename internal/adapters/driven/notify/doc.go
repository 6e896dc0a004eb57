// Package notify implements the Notifier driven port.
//
// Bus fans mutation notifications out to in-process subscribers.
// Watcher covers the cross-process case: it watches the database file
// and republishes external writes as collection change notifications.
package notify
