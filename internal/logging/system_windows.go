//go:build windows

package logging

import "golang.org/x/sys/windows/svc/eventlog"

const (
	eventSource = "IcedTea-Web"
	eventID     = 1
)

type eventLog struct {
	log *eventlog.Log
}

func openPlatformSink() (systemSink, error) {
	l, err := eventlog.Open(eventSource)
	if err != nil {
		return nil, err
	}
	return eventLog{log: l}, nil
}

func (e eventLog) Info(msg string) error {
	return e.log.Info(eventID, msg)
}

func (e eventLog) Warning(msg string) error {
	return e.log.Warning(eventID, msg)
}

func (e eventLog) Close() error {
	return e.log.Close()
}
