// Package strip removes "body" and "population" fragments from lines of
// Evolution fixture files. The scan is purely textual: a fragment starts at
// the quoted key, runs through a comma, any text without a closing bracket,
// and a terminating comma. Everything but the fragment's last two characters
// is dropped, and the line is scanned again until nothing matches.
package strip
