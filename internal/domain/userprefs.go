package domain

// Default window size used when no preferences were saved.
const (
	DefaultWindowWidth  = 740
	DefaultWindowHeight = 600
)

// Point is a window position on screen.
type Point struct {
	X int
	Y int
}

// GuiSettings records the window geometry of the last session.
// WindowCoordinates is nil when the position was never saved.
type GuiSettings struct {
	WindowWidth       float64
	WindowHeight      float64
	WindowCoordinates *Point
}

// DefaultGuiSettings returns the default window size with no position.
func DefaultGuiSettings() GuiSettings {
	return GuiSettings{WindowWidth: DefaultWindowWidth, WindowHeight: DefaultWindowHeight}
}

// Equal compares size and position.
func (g GuiSettings) Equal(other GuiSettings) bool {
	if g.WindowWidth != other.WindowWidth || g.WindowHeight != other.WindowHeight {
		return false
	}
	if g.WindowCoordinates == nil || other.WindowCoordinates == nil {
		return g.WindowCoordinates == nil && other.WindowCoordinates == nil
	}
	return *g.WindowCoordinates == *other.WindowCoordinates
}

// UserPrefs holds per-user settings that survive restarts.
type UserPrefs struct {
	GuiSettings        GuiSettings
	QuickCacheFilePath string
}

// NewUserPrefs returns default preferences pointing at dataFile.
func NewUserPrefs(dataFile string) UserPrefs {
	return UserPrefs{
		GuiSettings:        DefaultGuiSettings(),
		QuickCacheFilePath: dataFile,
	}
}
