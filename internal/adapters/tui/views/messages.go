package views

import "exomind/internal/domain"

// SwitchToRecallMsg returns to the recall view
type SwitchToRecallMsg struct{}

// ShowLinksMsg asks the app to open the links view for a node
type ShowLinksMsg struct {
	NodeID string
}

// OpenNoteMsg asks the app to open a note in the editor
type OpenNoteMsg struct {
	Row domain.RecallRow
}

// OpenInObsidianMsg asks the app to open a node in Obsidian
type OpenInObsidianMsg struct {
	NodeID string
}
