// Copyright (c) 2026 The OpenZipkin Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package zap adapts a zap.Logger to the zipkinreport.Logger interface.
package zap

import "go.uber.org/zap"

// Logger wraps a zap logger for use by the export pipeline.
type Logger struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

// NewLogger creates a pipeline logger backed by zap.
func NewLogger(logger *zap.Logger) *Logger {
	return &Logger{
		logger: logger,
		sugar:  logger.Sugar(),
	}
}

// Error logs a message at error priority.
func (l *Logger) Error(msg string) {
	l.logger.Error(msg)
}

// Infof logs a message at info priority.
func (l *Logger) Infof(msg string, args ...interface{}) {
	l.sugar.Infof(msg, args...)
}
