package detector

import (
	"errors"

	"github.com/mrdunski/addon-changes/git"
)

var (
	ErrFilesystem     = errors.New("filesystem error")
	ErrConfiguration  = errors.New("configuration error")
	ErrAmbiguousAddon = errors.New("file belongs to more than one addon")
	ErrExternalTool   = git.ErrCommandFailed
)
