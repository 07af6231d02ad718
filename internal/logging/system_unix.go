//go:build !windows && !plan9

package logging

import "log/syslog"

func openPlatformSink() (systemSink, error) {
	return syslog.New(syslog.LOG_USER|syslog.LOG_INFO, "icedtea-web")
}
