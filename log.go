package id3

import "log"

// Logging enables diagnostic logging of decisions the core makes silently
// by default: padding consumed by growth, a footer dropped in favor of
// padding, a save falling back to a full rewrite.
var Logging LogFlag

// LogFlag is a bool that knows how to log itself, the same gate the teacher
// library used for its own Logging var.
type LogFlag bool

// Println logs args through the standard logger when Logging is enabled.
func (l LogFlag) Println(args ...interface{}) {
	if l {
		log.Println(args...)
	}
}

// Printf logs a formatted message through the standard logger when Logging
// is enabled.
func (l LogFlag) Printf(format string, args ...interface{}) {
	if l {
		log.Printf(format, args...)
	}
}
