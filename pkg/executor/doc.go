// Package executor applies parsed rules to a target directory.
//
// An Engine dispatches a valid rule on its verb (move, prefix or suffix) and
// composes the action with the run mode:
//
//   - normal: the action is performed on the first matching file, or on
//     every match when RunMode.AllMatches is set
//   - dry-run: the rule is announced once and the filesystem is left alone
//   - interactive: every match is put to the Confirmer; a declined file is
//     skipped and the next match is offered. Combined with dry-run an
//     accepted file is announced instead of acted on.
//
// Outcomes are written to the console through a style.Printer. The returned
// Result mirrors them for callers; the returned error is reserved for faults
// that stop the whole run, such as an unreadable directory or an input that
// closed while a question was pending.
package executor
