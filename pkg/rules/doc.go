// Package rules implements sweep's rule language.
//
// A configuration file holds one rule per line:
//
//	<verb> <pattern> <preposition> <target>   // optional comment
//
// Three statements exist:
//
//	mv  *.mp3 to   /home/me/Music    move matching files into a directory
//	pre IMG_* with 2024_             prepend a prefix to matching names
//	suf *.txt with _old              insert a suffix before the extension
//
// Comments start at the first "//". Blank and comment-only lines are
// skipped and never become rules, so rule line numbers keep the gaps.
//
// Parsing never fails: a rejected line produces a Rule with Valid unset
// and a human-readable Error. The execution engine reports such rules and
// leaves the filesystem alone.
package rules
