package api

import (
	"fmt"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"
)

// leveledLogger adapts zerolog to retryablehttp.LeveledLogger.
type leveledLogger struct {
	log zerolog.Logger
}

var _ retryablehttp.LeveledLogger = leveledLogger{}

func (l leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.emit(l.log.Error(), msg, keysAndValues)
}

func (l leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.emit(l.log.Info(), msg, keysAndValues)
}

// Debug maps to trace; the client logs each attempt at debug itself.
func (l leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.emit(l.log.Trace(), msg, keysAndValues)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.emit(l.log.Warn(), msg, keysAndValues)
}

func (l leveledLogger) emit(ev *zerolog.Event, msg string, keysAndValues []interface{}) {
	if ev == nil {
		return
	}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		// full URLs carry query filters such as cpfCnpj
		if key == "url" {
			continue
		}
		ev = ev.Interface(key, keysAndValues[i+1])
	}
	ev.Msg(msg)
}
