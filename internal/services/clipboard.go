package services

import (
	"fyne.io/fyne/v2"
	"github.com/atotto/clipboard"

	"text-editor/internal/config"
	"text-editor/internal/debug"
)

// SystemClipboard implements fyne.Clipboard on top of the operating
// system clipboard tools, bypassing the fyne driver.
type SystemClipboard struct {
	logger debug.Logger
}

func NewSystemClipboard(logger debug.Logger) *SystemClipboard {
	return &SystemClipboard{logger: logger}
}

func (c *SystemClipboard) Content() string {
	text, err := clipboard.ReadAll()
	if err != nil {
		c.logger.Warning("SystemClipboard", "clipboard read failed", map[string]interface{}{"error": err.Error()})
		return ""
	}
	return text
}

func (c *SystemClipboard) SetContent(content string) {
	if err := clipboard.WriteAll(content); err != nil {
		c.logger.Warning("SystemClipboard", "clipboard write failed", map[string]interface{}{"error": err.Error()})
	}
}

// SelectClipboard picks the clipboard backend named in the configuration.
// The system backend is only used when the platform supports it.
func SelectClipboard(kind string, driver fyne.Clipboard, logger debug.Logger) fyne.Clipboard {
	if kind == config.ClipboardSystem {
		if clipboard.Unsupported {
			logger.Warning("SystemClipboard", "system clipboard unsupported, using window clipboard", nil)
			return driver
		}
		return NewSystemClipboard(logger)
	}
	return driver
}
