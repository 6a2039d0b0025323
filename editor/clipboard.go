package editor

// Clipboard supplies text for the Paste binding. Read errors are ignored.
type Clipboard interface {
	ReadText() (string, error)
}

func (m *Model) pasteFromClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		return
	}
	m.insert(s)
}
