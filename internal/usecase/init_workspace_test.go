package usecase

import "testing"

type fakeInitializer struct {
	root  string
	force bool
}

func (f *fakeInitializer) Init(root string, force bool) error {
	f.root, f.force = root, force
	return nil
}

func TestInitWorkspaceDelegates(t *testing.T) {
	fi := &fakeInitializer{}
	if err := NewInitWorkspace(fi).Execute("/tmp/ws", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fi.root != "/tmp/ws" || !fi.force {
		t.Fatalf("unexpected call: %#v", fi)
	}
}
