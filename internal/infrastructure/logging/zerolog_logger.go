package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/casellese/catalog-backend/internal/domain/ports"
)

// ZerologLogger implementa ports.Logger com saída legível para desenvolvimento
type ZerologLogger struct {
	logger zerolog.Logger
}

// NewConsoleLogger cria um logger zerolog com ConsoleWriter
func NewConsoleLogger(level string) ports.Logger {
	return NewZerologLoggerWithWriter(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		TimeFormat: "15:04:05",
	}, level)
}

// NewZerologLoggerWithWriter cria um logger zerolog sobre qualquer writer
func NewZerologLoggerWithWriter(w io.Writer, level string) ports.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	logger := zerolog.New(w).
		Level(parseZerologLevel(level)).
		With().
		Timestamp().
		Logger()

	return &ZerologLogger{logger: logger}
}

func parseZerologLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func (l *ZerologLogger) Info(msg string, args ...any) {
	withFields(l.logger.Info(), args).Msg(msg)
}

func (l *ZerologLogger) Error(msg string, args ...any) {
	withFields(l.logger.Error(), args).Msg(msg)
}

func (l *ZerologLogger) Debug(msg string, args ...any) {
	withFields(l.logger.Debug(), args).Msg(msg)
}

func (l *ZerologLogger) Warn(msg string, args ...any) {
	withFields(l.logger.Warn(), args).Msg(msg)
}

func (l *ZerologLogger) With(args ...any) ports.Logger {
	return &ZerologLogger{
		logger: l.logger.With().Fields(toFields(args)).Logger(),
	}
}

// withFields converte pares chave/valor no estilo slog em campos zerolog
func withFields(event *zerolog.Event, args []any) *zerolog.Event {
	return event.Fields(toFields(args))
}

func toFields(args []any) map[string]any {
	fields := make(map[string]any, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		key := fmt.Sprint(args[i])
		if i+1 >= len(args) {
			fields["!BADKEY"] = args[i]
			break
		}
		if err, ok := args[i+1].(error); ok {
			fields[key] = err.Error()
			continue
		}
		fields[key] = args[i+1]
	}
	return fields
}
