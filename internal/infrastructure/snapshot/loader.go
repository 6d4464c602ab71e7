// Package snapshot reads league snapshots stored as JSON files.
package snapshot

import (
	"context"
	"os"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/fantasy-stats/internal/domain/league"
	"github.com/riskibarqy/fantasy-stats/internal/platform/logging"
)

// FileLoader loads a league from a JSON file on disk. It implements
// league.Loader.
type FileLoader struct {
	logger *logging.Logger
}

func NewFileLoader(logger *logging.Logger) *FileLoader {
	if logger == nil {
		logger = logging.Default()
	}
	return &FileLoader{logger: logger}
}

// Load reads and decodes the snapshot at path. The result is not validated.
func (l *FileLoader) Load(ctx context.Context, path string) (league.League, error) {
	if err := ctx.Err(); err != nil {
		return league.League{}, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return league.League{}, crerr.Wrapf(crerr.Mark(err, league.ErrSnapshotNotFound), "read snapshot %s", path)
		}
		return league.League{}, crerr.Wrapf(err, "read snapshot %s", path)
	}

	out, err := Decode(raw)
	if err != nil {
		return league.League{}, crerr.Wrapf(err, "load snapshot %s", path)
	}

	l.logger.DebugContext(ctx, "snapshot loaded",
		"path", path,
		"bytes", len(raw),
		"years", len(out.Years),
		"owners", len(out.Owners),
	)
	return out, nil
}

// Decode converts snapshot JSON into a league.
func Decode(raw []byte) (league.League, error) {
	var model leagueModel
	if err := sonic.Unmarshal(raw, &model); err != nil {
		return league.League{}, crerr.Mark(crerr.Wrap(err, "decode league json"), league.ErrMalformedSnapshot)
	}
	out, err := model.toDomain()
	if err != nil {
		return league.League{}, crerr.Mark(err, league.ErrMalformedSnapshot)
	}
	return out, nil
}
