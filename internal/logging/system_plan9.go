//go:build plan9

package logging

import "errors"

func openPlatformSink() (systemSink, error) {
	return nil, errors.New("no system log on plan9")
}
