package adapter

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/rhessysweb/patchflow/internal/domain/flowtableio"
	"github.com/rhessysweb/patchflow/internal/logging"
	m "github.com/rhessysweb/patchflow/internal/model"
)

// FlowTableStore loads and saves flow table files.
type FlowTableStore interface {
	Load(path m.Path, strictHeader bool) (*m.FlowTable, error)

	// Save replaces path with table. The previous file survives any failure.
	Save(path m.Path, table *m.FlowTable) error
}

// LocalFlowTableStore is the FlowTableStore backed by the local filesystem.
type LocalFlowTableStore struct {
	logger zerolog.Logger
}

// NewLocalFlowTableStore constructs a LocalFlowTableStore.
func NewLocalFlowTableStore() *LocalFlowTableStore {
	return &LocalFlowTableStore{logger: logging.Component("store")}
}

// Load implements FlowTableStore.
func (s *LocalFlowTableStore) Load(path m.Path, strictHeader bool) (*m.FlowTable, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return nil, fmt.Errorf("open flow table: %w", err)
	}
	defer f.Close()

	opts := []flowtableio.ReadOption{flowtableio.WithLogger(s.logger)}
	if strictHeader {
		opts = append(opts, flowtableio.WithStrictHeader())
	}

	table, err := flowtableio.Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return table, nil
}

// Save implements FlowTableStore. It writes a temp file next to path, syncs
// it and renames it over path.
func (s *LocalFlowTableStore) Save(path m.Path, table *m.FlowTable) (err error) {
	target := string(path)
	dir, base := filepath.Split(target)

	if dir == "" {
		dir = "."
	}

	perm := os.FileMode(0o644)
	if info, statErr := os.Stat(target); statErr == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return fmt.Errorf("stat %s: %w", target, statErr)
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if err = flowtableio.Write(tmp, table); err != nil {
		return err
	}

	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", tmpName, err)
	}

	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmpName, err)
	}

	if err = os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}

	if err = os.Rename(tmpName, target); err != nil {
		return fmt.Errorf("rename %s: %w", tmpName, err)
	}

	s.logger.Debug().Str("path", target).Int("patches", table.Len()).Msg("flow table saved")

	return nil
}
