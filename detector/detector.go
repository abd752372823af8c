package detector

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/mrdunski/addon-changes/files"
	"github.com/mrdunski/addon-changes/git"
	"github.com/mrdunski/addon-changes/logger"
	"github.com/mrdunski/addon-changes/model"
	"github.com/sirupsen/logrus"
)

type Detector struct {
	config Config
	git    git.Client
	fs     files.FileAccess
	log    *logrus.Entry
}

func New(cfg Config, runner git.Runner) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Detector{
		config: cfg,
		git:    cfg.Client(runner),
		fs:     files.StdOS,
		log:    logger.WithComponent("detector"),
	}, nil
}

func (d *Detector) WithFileAccess(fa files.FileAccess) *Detector {
	d.fs = fa
	return d
}

func (d *Detector) ChangedAddonsByType(ctx context.Context) (model.AddonsByType, error) {
	addons, err := d.Addons()
	if err != nil {
		return model.AddonsByType{}, err
	}

	changedFiles, err := d.ChangedFiles(ctx)
	if err != nil {
		return model.AddonsByType{}, err
	}

	result, err := Classify(addons, changedFiles)
	if err != nil {
		return model.AddonsByType{}, err
	}

	d.log.WithFields(logrus.Fields{
		"addons":  addons.Len(),
		"files":   changedFiles.Len(),
		"olm":     result.Olm.Len(),
		"package": result.Package.Len(),
	}).Debug("Classified changes")

	return result, nil
}

// Addons lists resolved directories placed directly in the addons dir.
func (d *Detector) Addons() (model.PathSet, error) {
	root, err := files.ResolvePath(d.fs, d.config.AddonsDir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to resolve addons dir {%s}: %v", ErrFilesystem, d.config.AddonsDir, err)
	}

	stat, err := d.fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("%w: addons dir {%s} is not accessible: %v", ErrFilesystem, root, err)
	}
	if !stat.IsDir() {
		return nil, fmt.Errorf("%w: addons dir {%s} is not a directory", ErrFilesystem, root)
	}

	addons, err := files.NewLoader(root, d.config.Excludes...).WithFileAccess(d.fs).ChildDirs()
	if err != nil {
		return nil, fmt.Errorf("%w: failed to list addons in {%s}: %v", ErrFilesystem, root, err)
	}

	return addons, nil
}

// ChangedFiles returns resolved paths of all files touched in the configured range.
func (d *Detector) ChangedFiles(ctx context.Context) (model.PathSet, error) {
	topLevel, err := d.git.TopLevel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to find repository root: %w", err)
	}

	commitRange := d.config.Range()
	names, err := d.git.DiffNames(ctx, commitRange)
	if err != nil {
		return nil, fmt.Errorf("failed to list changes in {%s}: %w", commitRange, err)
	}

	result := model.PathSet{}
	for _, name := range names {
		resolved, err := files.ResolvePath(d.fs, filepath.Join(topLevel, name))
		if err != nil {
			return nil, fmt.Errorf("%w: failed to resolve {%s}: %v", ErrFilesystem, name, err)
		}
		result.Add(resolved)
	}

	d.log.WithField("range", commitRange.String()).Debugf("Found %d changed files", result.Len())

	return result, nil
}
