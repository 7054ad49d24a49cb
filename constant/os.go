package constant

// Values of runtime.GOOS the application special-cases.
const (
	Windows = "windows"
	Darwin  = "darwin"
	Linux   = "linux"
	Android = "android"
)
