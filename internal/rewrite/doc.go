// Package rewrite applies the strip transformation to every file directly
// inside a directory, replacing each file's content in place. Entries are
// handled one at a time in name order and the first failure stops the run;
// files rewritten before the failure stay rewritten.
package rewrite
