package executor

import (
	"strings"

	"github.com/arthur-debert/sweep/pkg/errors"
	"github.com/arthur-debert/sweep/pkg/filesystem"
	"github.com/arthur-debert/sweep/pkg/rules"
)

// apply performs the rule's action on one file of dir
func (e *Engine) apply(rule rules.Rule, dir, file string) *Failure {
	src := e.paths.Join(dir, file)

	var reason string
	var err error
	switch rule.Verb {
	case rules.VerbMove:
		reason, err = e.move(src, e.paths.Join(rule.Target(), file))
	case rules.VerbPrefix:
		reason, err = e.rename(src, e.paths.Join(dir, rule.Target()+file))
	case rules.VerbSuffix:
		name, ok := insertSuffix(file, rule.Target())
		if !ok {
			reason = "no extension to put the suffix before"
			err = errors.Newf(errors.ErrInvalidInput, "%s has no extension", file).
				WithDetail("file", file)
			break
		}
		reason, err = e.rename(src, e.paths.Join(dir, name))
	default:
		reason = "unhandled keywords " + rule.FirstKeyword + " and " + rule.SecondKeyword
		err = errors.New(errors.ErrInternal, reason)
	}

	if err == nil {
		e.logger.Info().
			Int("line", rule.LineNumber).
			Str("action", rule.Verb.Action()).
			Str("file", src).
			Msg("Applied rule")
		return nil
	}

	e.logger.Debug().Err(err).Str("file", src).Msg("Action failed")
	return &Failure{
		File:   file,
		Reason: reason,
		Code:   errors.Classify(err),
		Err:    err,
	}
}

// move copies src to dst then deletes src. When the delete fails both copies
// remain.
func (e *Engine) move(src, dst string) (string, error) {
	if err := filesystem.Copy(e.fs, src, dst); err != nil {
		return "cannot copy to " + dst, err
	}
	if err := e.fs.Remove(src); err != nil {
		return "copied to " + dst + " but cannot delete the original",
			errors.Wrapf(err, errors.ErrFileDelete, "cannot delete %s", src)
	}
	return "", nil
}

// rename renames src to dst, refusing to replace an existing dst
func (e *Engine) rename(src, dst string) (string, error) {
	reason := "cannot rename to " + dst
	if _, err := e.fs.Stat(dst); err == nil {
		return reason, errors.Newf(errors.ErrAlreadyExists, "%s already exists", dst).
			WithDetail("path", dst)
	}
	if err := e.fs.Rename(src, dst); err != nil {
		return reason, errors.Wrapf(err, errors.ErrFileRename, "cannot rename %s", src)
	}
	return "", nil
}

// insertSuffix puts suffix right before the final extension of name. A name
// without a dot, or whose only dot starts it, has no extension.
func insertSuffix(name, suffix string) (string, bool) {
	i := strings.LastIndex(name, ".")
	if i <= 0 {
		return "", false
	}
	return name[:i] + suffix + name[i:], true
}
