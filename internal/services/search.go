package services

import (
	"strings"
	"unicode/utf8"

	"text-editor/internal/debug"
	"text-editor/internal/models"
)

// ReplaceService performs literal find-and-replace over a document.
type ReplaceService struct {
	debugCoord debug.Coordinator
	logger     debug.Logger
}

func NewReplaceService(debugCoord debug.Coordinator) *ReplaceService {
	return &ReplaceService{
		debugCoord: debugCoord,
		logger:     debugCoord.Logger(),
	}
}

// FindAll returns the rune ranges of every non-overlapping, case-sensitive
// occurrence of find, scanning left to right. An empty find matches nothing.
func FindAll(text, find string) []models.Selection {
	if find == "" {
		return nil
	}

	var matches []models.Selection
	byteOff, runeOff := 0, 0
	findRunes := utf8.RuneCountInString(find)
	for {
		i := strings.Index(text[byteOff:], find)
		if i < 0 {
			return matches
		}
		runeOff += utf8.RuneCountInString(text[byteOff : byteOff+i])
		matches = append(matches, models.Selection{Start: runeOff, End: runeOff + findRunes})
		byteOff += i + len(find)
		runeOff += findRunes
	}
}

// ReplaceAll replaces every occurrence of find with replace and returns the
// count. Occurrences are rewritten from the end of the document backwards
// so that formatting spans elsewhere keep their anchors.
func (rs *ReplaceService) ReplaceAll(doc *models.Document, find, replace string) int {
	timer := rs.debugCoord.TimingTracker()
	timingCtx := timer.StartTiming("replace_all")
	defer timer.EndTiming(timingCtx)

	matches := FindAll(doc.Text(), find)
	for i := len(matches) - 1; i >= 0; i-- {
		m := matches[i]
		if err := doc.ReplaceRange(m.Start, m.End, replace); err != nil {
			rs.logger.Error("ReplaceService", err, map[string]interface{}{"start": m.Start})
			return len(matches) - 1 - i
		}
	}

	rs.debugCoord.EventPublisher().Publish(debug.Event{
		Type: debug.EventReplaceCompleted,
		Data: map[string]interface{}{"occurrences": len(matches)},
	})
	rs.logger.Debug("ReplaceService", "replace completed", map[string]interface{}{
		"find":        find,
		"occurrences": len(matches),
	})
	return len(matches)
}
