package ports

import "os/exec"

// EditorOpener opens a vault file in the user's preferred editor.
type EditorOpener interface {
	// OpenFile opens the file using $EDITOR, falling back to common editors
	OpenFile(path string) error

	// Command returns an exec.Cmd for opening the file, for handing to
	// bubbletea's ExecProcess
	Command(path string) (*exec.Cmd, error)
}
