package util

import (
	"io"

	"github.com/xuning888/deq/logger"
)

// Close closes closer and logs a failure instead of returning it.
func Close(closer io.Closer) {
	err := closer.Close()
	if err != nil {
		logger.ErrorF("close failed with error: %v", err)
	}
}
