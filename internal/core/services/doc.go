// Package services implements the core application logic behind the
// driving ports, using the driven ports for persistence and
// notification.
package services
