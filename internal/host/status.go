package host

//go:generate enumer -type=Status -trimprefix=Status
//go:generate go run github.com/towelWet/TowelHost/tools/enumerfix status_enumer.go

// Status is the outcome of loading the plugin.
type Status int

const (
	// StatusNoPlugin means no plugin was requested: the app still has its
	// placeholder name, or no name could be derived.
	StatusNoPlugin Status = iota

	// StatusLoadFailed means the plugin could not be loaded.
	StatusLoadFailed

	// StatusLoadedNoEditor means the plugin runs without an editor.
	StatusLoadedNoEditor

	// StatusLoadedWithEditor means the plugin runs with its editor open.
	StatusLoadedWithEditor
)

// Message returns the status line shown to the user.
func (s Status) Message() string {
	switch s {
	case StatusNoPlugin:
		return "Rename this app to match your plugin's name"
	case StatusLoadFailed:
		return "Failed to load plugin"
	case StatusLoadedNoEditor:
		return "Plugin loaded successfully but has no editor interface."
	case StatusLoadedWithEditor:
		return "Plugin loaded with its editor."
	default:
		return s.String()
	}
}

// Loaded reports whether a plugin instance is running.
func (s Status) Loaded() bool {
	return s == StatusLoadedNoEditor || s == StatusLoadedWithEditor
}
