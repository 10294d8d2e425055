package config

// DefaultPath is the configuration file used when Load receives an empty path.
const DefaultPath = "data/config.ini"

const (
	sectionVideo               = "Video"
	sectionDecoderSharedMemory = "DecoderSharedMemory"
	sectionNetwork             = "Network"
	sectionDebug               = "Debug"
)

// Legacy "not found" markers. A file value equal to one of these is rejected.
const (
	sentinelInt    = -1
	sentinelFloat  = -1.0
	sentinelString = "NotFound"
)

const (
	messageOK           = "OK"
	messageFileNotFound = "Configuration file not found"
	messageParseFailed  = "Configuration file parse FAILED!"
)

func fieldFailedMessage(section, key string) string {
	return section + ":" + key + " FAILED!"
}
