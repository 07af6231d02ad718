package config

// File name of the deployment configuration in every config directory.
const DeploymentProperties = "deployment.properties"

// Recognised deployment.properties keys
const (
	KeyJREDir = "deployment.jre.dir"

	KeyLogVerbose    = "deployment.log"
	KeyLogStdStreams = "deployment.log.stdstreams"
	KeyLogFile       = "deployment.log.file"
	KeyLogSystem     = "deployment.log.system"
	KeyLogDir        = "deployment.user.logdir"

	KeyBootClasspathRemove = "deployment.launcher.rust.bootcp.remove"
	KeyBootClasspathAdd    = "deployment.launcher.rust.bootcp.add"
	KeyClasspathRemove     = "deployment.launcher.rust.cp.remove"
	KeyClasspathAdd        = "deployment.launcher.rust.cp.add"
)
