// query.go
package reconcile

import (
	"context"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/arc-language/pkgflags/pkg/pkgconfig"
	"github.com/sirupsen/logrus"
)

type queryKey struct {
	pkg  string
	mode string
}

// query memoizes pkg-config output for the duration of one call, so the
// ownership scan does not rerun pkg-config for every token
type query struct {
	ctx    context.Context
	runner core.Runner
	logger logrus.FieldLogger
	result *Result
	lines  map[queryKey]string
}

func newQuery(ctx context.Context, runner core.Runner, logger logrus.FieldLogger, result *Result) *query {
	return &query{
		ctx:    ctx,
		runner: runner,
		logger: logger,
		result: result,
		lines:  make(map[queryKey]string),
	}
}

// tokens returns the tokens pkg contributes to category. A failed query
// contributes nothing and is recorded once as a warning.
func (q *query) tokens(pkg string, category core.FlagCategory) ([]string, error) {
	line, err := q.line(pkg, pkgconfig.ModeFor(category))
	if err != nil {
		return nil, err
	}
	return pkgconfig.Parse(category, line), nil
}

func (q *query) line(pkg, mode string) (string, error) {
	key := queryKey{pkg: pkg, mode: mode}
	if line, ok := q.lines[key]; ok {
		return line, nil
	}

	log := q.logger.WithFields(logrus.Fields{"package": pkg, "mode": mode})

	line, err := q.runner.Query(q.ctx, mode, pkg)
	if err != nil {
		if ctxErr := q.ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		log.WithError(err).Warn("pkg-config query failed")
		q.result.warn("%s: %v", pkg, err)
		line = ""
	} else if line == "" {
		log.Debug("pkg-config printed nothing")
	}

	q.lines[key] = line
	return line, nil
}

// owners returns the packages among candidates that emit token in category
func (q *query) owners(token string, category core.FlagCategory, candidates []string) ([]string, error) {
	var owners []string
	for _, pkg := range candidates {
		tokens, err := q.tokens(pkg, category)
		if err != nil {
			return nil, err
		}
		if category.Contains(tokens, token) {
			owners = append(owners, pkg)
		}
	}
	return owners, nil
}
