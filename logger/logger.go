package logger

import (
	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
)

const (
	componentKey = "component"
)

type LogConfig struct {
	LogLevel  string `help:"Level of logging." env:"LOG_LEVEL" default:"info" enum:"trace,debug,info,warn,error"`
	LogFormat string `help:"Format for logs." env:"LOG_FORMAT" default:"text" enum:"text,json"`
}

func (c LogConfig) InitLogger(kongCtx *kong.Context) error {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}

	logrus.SetOutput(kongCtx.Stderr)
	logrus.SetLevel(level)
	logrus.SetFormatter(c.formatter())

	return nil
}

func (c LogConfig) formatter() logrus.Formatter {
	switch c.LogFormat {
	case "json":
		return &logrus.JSONFormatter{}
	default:
		return &logrus.TextFormatter{}
	}
}

func Get() *logrus.Logger {
	return logrus.StandardLogger()
}

func WithComponent(component string) *logrus.Entry {
	return Get().WithField(componentKey, component)
}
