package launcher

import (
	"os"
	"path/filepath"
	"strings"

	"itw/internal/env"
	"itw/internal/java"
	"itw/internal/libs"
	"itw/internal/logging"
)

// EnvSplash disables the splash screen unless it is "true".
const EnvSplash = "ICEDTEA_WEB_SPLASH"

const (
	propBinName     = "-Dicedtea-web.bin.name="
	propBinLocation = "-Dicedtea-web.bin.location="
)

// Composer builds the JVM command line.
type Composer struct {
	sys       env.System
	log       *logging.Logger
	detector  *java.Detector
	classpath *libs.Builder
	mainClass string
}

// NewComposer creates a Composer launching mainClass.
func NewComposer(sys env.System, logger *logging.Logger, detector *java.Detector, classpath *libs.Builder, mainClass string) *Composer {
	return &Composer{
		sys:       sys,
		log:       logger,
		detector:  detector,
		classpath: classpath,
		mainClass: mainClass,
	}
}

// Compose returns the arguments for the java binary of jreDir. The order
// is fixed: -J flags, splash, args file (modular runtimes only), boot
// classpath, classpath, launcher identity properties, main class and the
// remaining original arguments.
func (c *Composer) Compose(jreDir string, args []string) []string {
	jvmArgs, appArgs := splitJVMArgs(args, func() {
		c.log.Info("Warning, empty -J switch")
	})

	all := make([]string, 0, len(args)+8)
	all = append(all, jvmArgs...)

	if splash, ok := c.splash(args); ok {
		all = append(all, splash)
	} else {
		c.log.Debug("splash excluded")
	}
	if c.detector.IsModular(jreDir) {
		all = append(all, "@"+c.classpath.ArgsFile())
	}

	all = append(all, c.classpath.BootClasspath(jreDir))
	all = append(all, "-classpath", c.classpath.Classpath(jreDir))

	// The running binary, not a configured path, identifies the launcher.
	exe := c.executable()
	c.log.Debug("current launcher", "name", filepath.Base(exe), "bin", exe)
	all = append(all, propBinName+filepath.Base(exe), propBinLocation+exe)

	all = append(all, c.mainClass)
	return append(all, appArgs...)
}

func (c *Composer) splash(args []string) (string, bool) {
	if IsHeadless(args) || c.splashForbidden() {
		return "", false
	}
	return "-splash:" + c.classpath.Splash(), true
}

func (c *Composer) splashForbidden() bool {
	value, ok := c.sys.LookupEnv(EnvSplash)
	return ok && !strings.EqualFold(value, "true")
}

func (c *Composer) executable() string {
	exe, err := c.sys.Executable()
	if err != nil {
		c.log.Debug("cannot resolve launcher binary, using argv[0]", "err", err)
		return os.Args[0]
	}
	return exe
}
