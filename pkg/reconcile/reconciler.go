// reconciler.go
package reconcile

import (
	"context"
	"fmt"
	"io"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/arc-language/pkgflags/pkg/pkgconfig"
	"github.com/sirupsen/logrus"
)

// Attribute values stored per package in the "packages" storage block
const (
	Checked   = "true"
	Unchecked = "false"
)

// Options configures a Reconciler
type Options struct {
	// Logger receives contained failures. Nil discards them.
	Logger logrus.FieldLogger

	// PathExists, when set, filters include and library search paths
	// that do not exist before they are added to a slot.
	PathExists func(path string) bool

	// PersistListing also stores an "unchecked" attribute for every package
	// pkg-config lists, not only for the ones that were ever toggled.
	PersistListing bool
}

// Reconciler keeps the option slots of a build configuration equal to the
// union of the flags of its checked packages
type Reconciler struct {
	runner         core.Runner
	logger         logrus.FieldLogger
	pathExists     func(string) bool
	persistListing bool
}

// Slots holds tokens per flag category
type Slots map[core.FlagCategory][]string

// Result describes what one reconciliation changed
type Result struct {
	Added    Slots
	Removed  Slots
	Active   core.PackageSet // checked set after the transition
	Reindex  bool            // an index rebuild was requested
	Warnings []string        // contained failures, one line each
}

// Changed reports whether any slot was modified
func (r *Result) Changed() bool {
	for _, c := range core.AllCategories {
		if len(r.Added[c]) > 0 || len(r.Removed[c]) > 0 {
			return true
		}
	}
	return false
}

func (r *Result) warn(format string, args ...interface{}) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

// New creates a Reconciler that queries packages through runner
func New(runner core.Runner, opts *Options) *Reconciler {
	if opts == nil {
		opts = &Options{}
	}

	logger := opts.Logger
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}

	return &Reconciler{
		runner:         runner,
		logger:         logger.WithField("component", "reconcile"),
		pathExists:     opts.PathExists,
		persistListing: opts.PersistListing,
	}
}

// Diff returns the names checked in next but not prev, and the names
// checked in prev but not next
func Diff(prev, next core.PackageSet) (added, removed []string) {
	return next.Minus(prev), prev.Minus(next)
}

// Reconcile applies the transition from active to (active ∪ added) − removed
// to cfg. Additions are applied before removals. A token is removed only
// when no package left in the resulting set emits an equal token.
//
// Query and storage failures are logged and reported in Result.Warnings;
// the only error returned is the cancellation of ctx.
func (r *Reconciler) Reconcile(ctx context.Context, cfg core.Configuration, active core.PackageSet, added, removed []string) (*Result, error) {
	res := &Result{
		Added:   Slots{},
		Removed: Slots{},
		Active:  active.Clone(),
	}

	added, removed = dedup(added), dedup(removed)
	added = r.valid(added, res)
	if len(added) == 0 && len(removed) == 0 {
		return res, nil
	}

	log := r.logger.WithField("configuration", cfg.Name())
	if !cfg.HasTools() {
		log.Info("Configuration has no compiler or linker tool, skipping")
		res.warn("%s: %v", cfg.Name(), core.ErrNotManaged)
		return res, nil
	}

	next := active.Clone()
	next.Add(added...)
	next.Remove(removed...)

	q := newQuery(ctx, r.runner, log, res)

	for _, category := range core.AllCategories {
		if err := r.reconcileSlot(q, cfg, category, added, removed, next); err != nil {
			return nil, err
		}
	}

	r.persist(ctx, log, cfg, active, next, res)
	res.Active = next

	if len(added) > 0 {
		if err := cfg.RequestReindex(); err != nil {
			log.WithError(err).Warn("Failed to request index rebuild")
			res.warn("%s: requesting index rebuild: %v", cfg.Name(), err)
		} else {
			res.Reindex = true
		}
	}

	log.WithFields(logrus.Fields{
		"added":   len(added),
		"removed": len(removed),
		"active":  len(next),
	}).Debug("Reconciled configuration")

	return res, nil
}

func (r *Reconciler) reconcileSlot(q *query, cfg core.Configuration, category core.FlagCategory, added, removed []string, next core.PackageSet) error {
	log := q.logger.WithField("category", category.String())

	current, err := cfg.Options(category)
	if err != nil {
		log.WithError(err).Warn("Failed to read option slot")
		q.result.warn("%s: reading %s: %v", cfg.Name(), category, err)
		return nil
	}
	slot := append([]string(nil), current...)
	changed := false

	for _, pkg := range added {
		tokens, err := q.tokens(pkg, category)
		if err != nil {
			return err
		}
		for _, tok := range tokens {
			if category.Contains(slot, tok) {
				continue
			}
			if category.IsPath() && r.pathExists != nil && !r.pathExists(tok) {
				log.WithField("package", pkg).Infof("Skipping missing path %s", tok)
				q.result.warn("%s: %s: path %s does not exist", cfg.Name(), pkg, tok)
				continue
			}
			slot = append(slot, tok)
			q.result.Added[category] = append(q.result.Added[category], tok)
			changed = true
		}
	}

	remaining := next.Sorted()
	for _, pkg := range removed {
		tokens, err := q.tokens(pkg, category)
		if err != nil {
			return err
		}
		for _, tok := range tokens {
			if !category.Contains(slot, tok) {
				continue
			}
			owners, err := q.owners(tok, category, remaining)
			if err != nil {
				return err
			}
			if len(owners) > 0 {
				log.WithField("package", pkg).Debugf("Keeping %s, still needed by %v", tok, owners)
				continue
			}
			slot = without(slot, tok, category)
			q.result.Removed[category] = append(q.result.Removed[category], tok)
			changed = true
		}
	}

	if !changed {
		return nil
	}
	if err := cfg.SetOptions(category, slot); err != nil {
		log.WithError(err).Warn("Failed to write option slot")
		q.result.warn("%s: writing %s: %v", cfg.Name(), category, err)
	}
	return nil
}

// persist stores one attribute per known package and saves the build info.
// Failures are logged; slot changes already made are kept.
func (r *Reconciler) persist(ctx context.Context, log logrus.FieldLogger, cfg core.Configuration, prev, next core.PackageSet, res *Result) {
	known := core.NewPackageSet(cfg.Names()...)
	for name := range prev {
		known.Add(name)
	}
	for name := range next {
		known.Add(name)
	}

	if r.persistListing {
		pkgs, err := r.runner.List(ctx)
		if err != nil {
			log.WithError(err).Warn("Failed to list packages")
			res.warn("listing packages: %v", err)
		}
		for _, p := range pkgs {
			known.Add(p.Name)
		}
	}

	for _, name := range known.Sorted() {
		value := Unchecked
		if next.Has(name) {
			value = Checked
		}
		if err := cfg.SetAttribute(name, value); err != nil {
			log.WithError(err).WithField("package", name).Warn("Failed to store package state")
			res.warn("%s: storing %s: %v", cfg.Name(), name, err)
		}
	}

	if err := cfg.SaveBuildInfo(); err != nil {
		log.WithError(err).Warn("Failed to save build info")
		res.warn("%s: saving build info: %v", cfg.Name(), err)
	}
}

// Owners returns the packages of active that emit a token equal to token
func (r *Reconciler) Owners(ctx context.Context, token string, category core.FlagCategory, active core.PackageSet) ([]string, *Result, error) {
	res := &Result{Active: active.Clone()}
	q := newQuery(ctx, r.runner, r.logger, res)

	owners, err := q.owners(token, category, active.Sorted())
	if err != nil {
		return nil, nil, err
	}
	return owners, res, nil
}

// Resolve returns the union of the flags of every package in active, in
// package name order with duplicates dropped
func (r *Reconciler) Resolve(ctx context.Context, active core.PackageSet) (Slots, *Result, error) {
	res := &Result{Active: active.Clone()}
	q := newQuery(ctx, r.runner, r.logger, res)

	slots := Slots{}
	for _, category := range core.AllCategories {
		for _, pkg := range active.Sorted() {
			tokens, err := q.tokens(pkg, category)
			if err != nil {
				return nil, nil, err
			}
			for _, tok := range tokens {
				if !category.Contains(slots[category], tok) {
					slots[category] = append(slots[category], tok)
				}
			}
		}
	}
	return slots, res, nil
}

// valid drops names pkg-config cannot be asked about; they are never checked
func (r *Reconciler) valid(names []string, res *Result) []string {
	out := names[:0]
	for _, name := range names {
		if !pkgconfig.ValidPackage(name) {
			r.logger.WithField("package", name).Warn("Ignoring invalid package name")
			res.warn("%s: %v", name, core.ErrInvalidPackage)
			continue
		}
		out = append(out, name)
	}
	return out
}

func dedup(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	var out []string
	for _, name := range names {
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	return out
}

func without(values []string, tok string, category core.FlagCategory) []string {
	out := values[:0]
	for _, v := range values {
		if !category.Equal(v, tok) {
			out = append(out, v)
		}
	}
	return out
}
