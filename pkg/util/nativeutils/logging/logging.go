// This Source Code Form is subject to the terms of the MIT License.
// If a copy of the MIT License was not distributed with this
// file, you can obtain one at https://opensource.org/licenses/MIT.
//
// Copyright (c) DUSK NETWORK. All rights reserved.

package logging

import (
	"io"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"gopkg.in/natefinch/lumberjack.v2"
)

const timestampFormat = "2006-01-02 15:04:05.000"

// InitLog configures the standard logger: level, format and output.
// output is stdout, stderr or a file path; files are rotated. The returned
// closer releases the output and must be called on shutdown.
func InitLog(level, format, output string) (io.Closer, error) {
	SetToLevel(level)
	SetFormat(format)

	w, err := openOutput(output)
	if err != nil {
		return nil, err
	}

	log.SetOutput(w)
	return w, nil
}

// SetToLevel applies the given level, falling back to trace when it can not
// be parsed.
func SetToLevel(l string) {
	level, err := log.ParseLevel(l)
	if err == nil {
		log.SetLevel(level)
	} else {
		log.SetLevel(log.TraceLevel)
		log.Warnf("Parse logger level from config err: %v", err)
	}
}

// SetFormat selects json or text output. Anything but json gets the text
// formatter.
func SetFormat(format string) {
	log.SetFormatter(formatter(format))
}

func formatter(format string) log.Formatter {
	if format == "json" {
		return &log.JSONFormatter{TimestampFormat: timestampFormat}
	}

	return &prefixed.TextFormatter{
		TimestampFormat: timestampFormat,
		FullTimestamp:   true,
		ForceFormatting: true,
	}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error {
	return nil
}

func openOutput(output string) (io.WriteCloser, error) {
	switch output {
	case "", "stdout":
		return nopCloser{os.Stdout}, nil
	case "stderr":
		return nopCloser{os.Stderr}, nil
	}

	if err := os.MkdirAll(filepath.Dir(output), os.ModePerm); err != nil {
		return nil, err
	}

	return createRollingFileLogger(output), nil
}

func createRollingFileLogger(logfile string) *lumberjack.Logger {
	return &lumberjack.Logger{
		Filename:   logfile,
		MaxSize:    500, // megabytes
		MaxBackups: 3,
		MaxAge:     28,   //days
		Compress:   true, // disabled by default
	}
}
