// Package logger provides adapters for popular logger libraries to work with bindex's Logger interface.
//
// The adapters allow you to use your existing logger with bindex without writing boilerplate.
// Note that the standard library's slog.Logger already implements bindex.Logger directly.
//
// Example with zap:
//
//	import (
//	    "github.com/alexhholmes/bindex"
//	    "github.com/alexhholmes/bindex/logger"
//	    "go.uber.org/zap"
//	)
//
//	func main() {
//	    zapLogger, _ := zap.NewProduction()
//
//	    tree, err := bindex.New[int, string](64, bindex.WithLogger(logger.NewZap(zapLogger)))
//	    if err != nil {
//	        panic(err)
//	    }
//	    _ = tree.Insert(1, "one")
//	}
package logger
