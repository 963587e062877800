package organize

// ProgressLevel indicates the severity/type of a progress message.
type ProgressLevel int

const (
	LevelInfo ProgressLevel = iota
	LevelVerbose
	LevelWarning
	LevelError
	LevelSuccess
)

func (l ProgressLevel) String() string {
	switch l {
	case LevelVerbose:
		return "verbose"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSuccess:
		return "success"
	default:
		return "info"
	}
}

// ProgressEvent represents an organizer progress update.
type ProgressEvent struct {
	Message string
	Level   ProgressLevel

	// Version is the key of the version being processed, if any.
	Version string

	// Planned is set once per run to the number of tracks that will be
	// organized.
	Planned int

	// TrackDone marks the event that completes one track.
	TrackDone bool
}
