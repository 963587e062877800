package audio

import "fmt"

// TagError reports a failed tag deletion or tag write.
type TagError struct {
	Path string
	Op   string // "delete", "write", "open", "save"
	Err  error

	// Output is what the external tool printed, if one was used.
	Output string
}

func (e *TagError) Error() string {
	msg := fmt.Sprintf("tag %s %s: %v", e.Op, e.Path, e.Err)
	if e.Output != "" {
		msg += ": " + e.Output
	}
	return msg
}

func (e *TagError) Unwrap() error { return e.Err }

// RemuxError reports a failed cover art embed.
type RemuxError struct {
	Path string
	Tool string
	Err  error

	// Stderr is the tool's diagnostic output.
	Stderr string
}

func (e *RemuxError) Error() string {
	msg := fmt.Sprintf("embed cover with %s into %s: %v", e.Tool, e.Path, e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *RemuxError) Unwrap() error { return e.Err }
