// Package defaults holds the values compiled into a launcher build.
//
// Every variable is a string so that packagers can override it with
//
//	go build -ldflags "-X itw/internal/defaults.Main=net.example.Main"
//
// Optional jars default to the empty string, which means "not shipped".
package defaults

// Runtime
var (
	Java = "/usr/lib/jvm/jre/bin/java"
	JRE  = "/usr/lib/jvm/jre"
	Main = "net.sourceforge.jnlp.runtime.Boot"

	// LibSearch is the default library search mode, one of BUNDLED,
	// DISTRIBUTION or EMBEDDED.
	LibSearch = "DISTRIBUTION"
)

// Resources resolved relative to the launcher
var (
	Splash   = "/usr/share/icedtea-web/javaws_splash.png"
	ArgsFile = "/usr/share/icedtea-web/bin/itw-modularjdk.args"
)

// Required jars
var (
	CoreJar       = "/usr/share/icedtea-web/javaws.jar"
	CommonJar     = "/usr/share/icedtea-web/common.jar"
	JnlpAPIJar    = "/usr/share/icedtea-web/jnlp-api.jar"
	XMLParserJar  = "/usr/share/icedtea-web/xml-parser.jar"
	ClientsJar    = "/usr/share/icedtea-web/clients.jar"
	JnlpServerJar = "/usr/share/icedtea-web/jnlp-servlet.jar"
)

// Optional jars
var (
	RhinoJar     = ""
	TagsoupJar   = ""
	MslinksJar   = ""
	GsonJar      = ""
	IPAddressJar = ""
)

// Jar is a jar the launcher puts on the boot classpath.
type Jar struct {
	Name     string
	Path     string
	Required bool
}

// BootJars returns the boot classpath jars in classpath order.
func BootJars() []Jar {
	return []Jar{
		{Name: "core", Path: CoreJar, Required: true},
		{Name: "common", Path: CommonJar, Required: true},
		{Name: "jnlp-api", Path: JnlpAPIJar, Required: true},
		{Name: "xml-parser", Path: XMLParserJar, Required: true},
		{Name: "clients", Path: ClientsJar, Required: true},
		{Name: "jnlp-servlet", Path: JnlpServerJar, Required: true},
		{Name: "rhino", Path: RhinoJar},
		{Name: "tagsoup", Path: TagsoupJar},
		{Name: "mslinks", Path: MslinksJar},
		{Name: "gson", Path: GsonJar},
		{Name: "ipaddress", Path: IPAddressJar},
	}
}
