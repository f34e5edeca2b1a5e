// events.go
package reconcile

import "github.com/arc-language/pkgflags/pkg/core"

// Event is a change of the checked package set of one configuration
type Event interface {
	// Changes resolves the event against the current checked set into the
	// names to add and the names to remove
	Changes(prev core.PackageSet) (added, removed []string)
}

// PackageToggled checks or unchecks a single package
type PackageToggled struct {
	Name    string
	Checked bool
}

// Changes implements Event
func (e PackageToggled) Changes(prev core.PackageSet) (added, removed []string) {
	switch {
	case e.Checked && !prev.Has(e.Name):
		return []string{e.Name}, nil
	case !e.Checked && prev.Has(e.Name):
		return nil, []string{e.Name}
	default:
		return nil, nil
	}
}

// BulkToggled checks and unchecks several packages at once
type BulkToggled struct {
	Added   []string
	Removed []string
}

// Changes implements Event. Names already in the requested state are ignored.
func (e BulkToggled) Changes(prev core.PackageSet) (added, removed []string) {
	for _, name := range e.Added {
		if !prev.Has(name) {
			added = append(added, name)
		}
	}
	for _, name := range e.Removed {
		if prev.Has(name) {
			removed = append(removed, name)
		}
	}
	return added, removed
}

// SetChecked replaces the checked set with Names
type SetChecked struct {
	Names []string
}

// Changes implements Event
func (e SetChecked) Changes(prev core.PackageSet) (added, removed []string) {
	return Diff(prev, core.NewPackageSet(e.Names...))
}
