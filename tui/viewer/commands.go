package viewer

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) fetchThread(id string, reqSeq int) tea.Cmd {
	svc := m.threads
	return func() tea.Msg {
		thread, err := svc.FetchThread(context.Background(), id)
		if err != nil {
			return threadErrorMsg{Err: err, ReqSeq: reqSeq}
		}
		return threadLoadedMsg{Thread: thread, ReqSeq: reqSeq}
	}
}

// copyOutput copies the active rendering; the raw stored string, not the
// wrapped preview shown in the viewport.
func (m Model) copyOutput() tea.Cmd {
	text := m.activeOutput()
	mode := m.mode
	clip := m.clipboard
	return func() tea.Msg {
		return CopyResultMsg{Mode: mode, Err: clip.Copy(text)}
	}
}
