package logger

import (
	"go.uber.org/zap"
)

var log *zap.Logger

// Init builds the process logger. Development mode gets the human-readable
// console encoder, everything else logs structured JSON.
func Init(isDev bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if isDev {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	log = l
	return nil
}

func L() *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}

func Sync() {
	if log != nil {
		_ = log.Sync()
	}
}
