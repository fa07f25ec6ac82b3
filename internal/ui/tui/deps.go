package tui

import (
	"go.uber.org/zap"

	"github.com/ShubhamAnand123/onlawthink/internal/ports"
)

type Deps struct {
	Service  ports.DirectoryService
	Session  ports.SessionSource
	Recorder ports.FetchRecorder

	Logger  *zap.Logger
	LogPath string
	Root    string
}
