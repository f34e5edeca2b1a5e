package reconcile

import (
	"context"
	"testing"

	"github.com/arc-language/pkgflags/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventChanges(t *testing.T) {
	t.Parallel()

	prev := core.NewPackageSet("a", "b")

	tests := []struct {
		name    string
		event   Event
		added   []string
		removed []string
	}{
		{"check new", PackageToggled{Name: "c", Checked: true}, []string{"c"}, nil},
		{"check checked", PackageToggled{Name: "a", Checked: true}, nil, nil},
		{"uncheck checked", PackageToggled{Name: "a"}, nil, []string{"a"}},
		{"uncheck unchecked", PackageToggled{Name: "z"}, nil, nil},
		{"bulk", BulkToggled{Added: []string{"a", "c"}, Removed: []string{"b", "z"}}, []string{"c"}, []string{"b"}},
		{"set", SetChecked{Names: []string{"b", "c"}}, []string{"c"}, []string{"a"}},
		{"set none", SetChecked{}, nil, []string{"a", "b"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			added, removed := tc.event.Changes(prev)
			assert.Equal(t, tc.added, nilIfEmpty(added))
			assert.Equal(t, tc.removed, nilIfEmpty(removed))
		})
	}
}

func TestSessionLoadsStoredState(t *testing.T) {
	t.Parallel()

	cfg := newFakeConfig("Debug")
	cfg.attrs["A"] = Checked
	cfg.attrs["B"] = Unchecked
	cfg.slots[core.IncludePath] = []string{"/usr/include/a"}
	cfg.slots[core.OtherFlag] = []string{"-DFOO"}

	s := NewSession(New(abRunner(), nil), cfg)
	assert.Equal(t, []string{"A"}, s.Active().Sorted())
	assert.Equal(t, Idle, s.State())
	assert.Same(t, cfg, s.Configuration())

	res, err := s.Handle(context.Background(), SetChecked{Names: []string{"B"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"-DFOO"}, res.Removed[core.OtherFlag])
	assert.Equal(t, []string{"-DBAR"}, res.Added[core.OtherFlag])
	assert.Equal(t, []string{"/usr/include/a"}, cfg.slots[core.IncludePath])
	assert.Equal(t, []string{"B"}, s.Active().Sorted())
	assert.Equal(t, Idle, s.State())
}

func TestSessionFirstVisitStartsEmpty(t *testing.T) {
	t.Parallel()

	s := NewSession(New(abRunner(), nil), newFakeConfig("Debug"))
	assert.Empty(t, s.Active())

	// the returned set is a copy
	s.Active().Add("A")
	assert.Empty(t, s.Active())
}

func TestSessionBusy(t *testing.T) {
	t.Parallel()

	s := NewSession(New(abRunner(), nil), newFakeConfig("Debug"))
	s.state = Toggling

	_, err := s.Handle(context.Background(), PackageToggled{Name: "A", Checked: true})
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, "toggling", s.State().String())
}

func TestSessionKeepsStateOnCancel(t *testing.T) {
	t.Parallel()

	s := NewSession(New(abRunner(), nil), newFakeConfig("Debug"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Handle(ctx, PackageToggled{Name: "A", Checked: true})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, s.Active())
	assert.Equal(t, Idle, s.State())
}
