// Package platform provides cross-platform filesystem helpers. On Unix
// systems permission bits are applied directly; on Windows, which has no
// Unix-style permission bits, they are skipped.
package platform
