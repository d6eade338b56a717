package logger

import (
	"os"

	"BudgetBuddy/config"

	"github.com/rs/zerolog"
)

var log zerolog.Logger

func init() {
	// logger padrão até Init ser chamado pelo módulo de configuração
	log = zerolog.New(os.Stdout).With().Timestamp().Logger()
}

// Init configura o logger global conforme o ambiente da aplicação
func Init(cfg *config.Config) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if cfg.App.Environment == "development" {
		output := zerolog.ConsoleWriter{Out: os.Stdout}
		log = zerolog.New(output).With().Timestamp().Logger()
		return
	}

	log = zerolog.New(os.Stdout).With().Timestamp().Logger().Level(zerolog.InfoLevel)
}

func Debug() *zerolog.Event {
	return log.Debug()
}

func Info() *zerolog.Event {
	return log.Info()
}

func Warn() *zerolog.Event {
	return log.Warn()
}

func Error() *zerolog.Event {
	return log.Error()
}

func Fatal() *zerolog.Event {
	return log.Fatal()
}
