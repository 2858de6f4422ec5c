// Package app assembles the pieces every golearn command needs: the
// diagnostic logger and the topic table built from the embedded catalog.
package app

import (
	"fmt"
	"io"

	"github.com/flarebyte/golearn/internal/demo"
	"github.com/flarebyte/golearn/internal/lesson"
	"github.com/flarebyte/golearn/internal/logging"
	"github.com/flarebyte/golearn/internal/topic"
	"github.com/rs/zerolog"
)

// Setup builds the logger (writing to logOut) and the topic table.
func Setup(logOut io.Writer, level string) ([]topic.Topic, zerolog.Logger, error) {
	log, err := logging.New(logOut, level)
	if err != nil {
		return nil, log, err
	}
	demos := demo.Runner{}
	cat, err := lesson.LoadEmbedded(demos)
	if err != nil {
		return nil, log, fmt.Errorf("failed to load lessons: %w", err)
	}
	log.Debug().Str("component", "catalog").Int("lessons", cat.Len()).Int("demos", len(demo.Names())).Msg("catalog loaded")
	return topic.Build(cat, demos), log, nil
}
