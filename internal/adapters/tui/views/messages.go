package views

import "recall/internal/domain"

// Messages for view switching
type SwitchToCreateMsg struct {
	Parent domain.NotePath
}

type SwitchToDeleteMsg struct {
	Note domain.Note
}

type SwitchToViewerMsg struct {
	Note domain.Note
}

type SwitchToHelpMsg struct{}

type SwitchToBrowserMsg struct {
	Message    string
	MessageErr bool
}

// OpenEditorMsg asks the app to suspend and open a file in the editor
type OpenEditorMsg struct {
	Path string
}
