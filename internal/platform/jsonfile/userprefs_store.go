package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/phrazzld/quickcache/internal/domain"
	"github.com/phrazzld/quickcache/internal/platform/logger"
	"github.com/phrazzld/quickcache/internal/store"
)

type jsonPoint struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type jsonGuiSettings struct {
	WindowWidth       float64    `json:"windowWidth"`
	WindowHeight      float64    `json:"windowHeight"`
	WindowCoordinates *jsonPoint `json:"windowCoordinates,omitempty"`
}

type jsonUserPrefs struct {
	GuiSettings        jsonGuiSettings `json:"guiSettings"`
	QuickCacheFilePath string          `json:"quickCacheFilePath"`
}

func newJSONUserPrefs(prefs domain.UserPrefs) jsonUserPrefs {
	j := jsonUserPrefs{
		GuiSettings: jsonGuiSettings{
			WindowWidth:  prefs.GuiSettings.WindowWidth,
			WindowHeight: prefs.GuiSettings.WindowHeight,
		},
		QuickCacheFilePath: prefs.QuickCacheFilePath,
	}
	if p := prefs.GuiSettings.WindowCoordinates; p != nil {
		j.GuiSettings.WindowCoordinates = &jsonPoint{X: p.X, Y: p.Y}
	}
	return j
}

func (j jsonUserPrefs) toDomain() domain.UserPrefs {
	prefs := domain.UserPrefs{
		GuiSettings: domain.GuiSettings{
			WindowWidth:  j.GuiSettings.WindowWidth,
			WindowHeight: j.GuiSettings.WindowHeight,
		},
		QuickCacheFilePath: j.QuickCacheFilePath,
	}
	if p := j.GuiSettings.WindowCoordinates; p != nil {
		prefs.GuiSettings.WindowCoordinates = &domain.Point{X: p.X, Y: p.Y}
	}
	return prefs
}

// UserPrefsStore keeps the user preferences in one JSON file.
type UserPrefsStore struct {
	path   string
	logger *slog.Logger
}

// Ensure UserPrefsStore implements the store.UserPrefsStore interface
var _ store.UserPrefsStore = (*UserPrefsStore)(nil)

// NewUserPrefsStore creates a store for the file at path.
func NewUserPrefsStore(path string, log *slog.Logger) *UserPrefsStore {
	if log == nil {
		log = slog.Default()
	}
	return &UserPrefsStore{
		path:   path,
		logger: log.With(slog.String("component", "json_userprefs_store")),
	}
}

// UserPrefsFilePath implements store.UserPrefsStore.UserPrefsFilePath
func (s *UserPrefsStore) UserPrefsFilePath() string {
	return s.path
}

// ReadUserPrefs implements store.UserPrefsStore.ReadUserPrefs.
// Fields missing from the file keep their defaults.
func (s *UserPrefsStore) ReadUserPrefs(ctx context.Context) (domain.UserPrefs, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if isNotExist(err) {
			return domain.UserPrefs{}, store.NewStoreError(store.EntityUserPrefs, "read",
				"preferences file "+s.path+" not found", store.ErrNotFound)
		}
		return domain.UserPrefs{}, store.NewStoreError(store.EntityUserPrefs, "read",
			"failed to read preferences file", err)
	}

	j := newJSONUserPrefs(domain.NewUserPrefs(""))
	if err := json.Unmarshal(data, &j); err != nil {
		return domain.UserPrefs{}, store.NewStoreError(store.EntityUserPrefs, "read",
			"malformed preferences file", fmt.Errorf("%w: %v", store.ErrDataConversion, err))
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("read user preferences", slog.String("path", s.path))
	return j.toDomain(), nil
}

// SaveUserPrefs implements store.UserPrefsStore.SaveUserPrefs
func (s *UserPrefsStore) SaveUserPrefs(ctx context.Context, prefs domain.UserPrefs) error {
	data, err := json.MarshalIndent(newJSONUserPrefs(prefs), "", "  ")
	if err != nil {
		return store.NewStoreError(store.EntityUserPrefs, "save", "failed to encode preferences", err)
	}
	if err := WriteFile(s.path, append(data, '\n')); err != nil {
		return store.NewStoreError(store.EntityUserPrefs, "save", "failed to write preferences file", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("saved user preferences", slog.String("path", s.path))
	return nil
}
