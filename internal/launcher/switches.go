package launcher

import "strings"

const (
	switchVerbose  = "-verbose"
	switchHeadless = "-headless"
	jvmPrefix      = "-J"
)

// CleanParam collapses any run of leading dashes to one, so that
// "--verbose" and "---verbose" both read as "-verbose".
func CleanParam(s string) string {
	trimmed := strings.TrimLeft(s, "-")
	if len(trimmed) == len(s) {
		return s
	}
	return "-" + trimmed
}

// HasSwitch reports whether any argument cleans to sw.
func HasSwitch(args []string, sw string) bool {
	for _, a := range args {
		if CleanParam(a) == sw {
			return true
		}
	}
	return false
}

// IsVerbose reports whether -verbose was passed.
func IsVerbose(args []string) bool {
	return HasSwitch(args, switchVerbose)
}

// IsHeadless reports whether -headless was passed.
func IsHeadless(args []string) bool {
	return HasSwitch(args, switchHeadless)
}

// splitJVMArgs separates -J<flag> arguments, returned without the prefix,
// from the arguments for the application. A bare -J is dropped and
// reported through onEmpty.
func splitJVMArgs(args []string, onEmpty func()) (jvm, app []string) {
	for _, a := range args {
		if !strings.HasPrefix(a, jvmPrefix) {
			app = append(app, a)
			continue
		}
		if flag := a[len(jvmPrefix):]; flag != "" {
			jvm = append(jvm, flag)
		} else {
			onEmpty()
		}
	}
	return jvm, app
}
