package usecase

import "github.com/ShubhamAnand123/onlawthink/internal/ports"

type InitWorkspace struct {
	initializer ports.Initializer
}

func NewInitWorkspace(initializer ports.Initializer) *InitWorkspace {
	return &InitWorkspace{initializer: initializer}
}

func (uc *InitWorkspace) Execute(root string, force bool) error {
	return uc.initializer.Init(root, force)
}
