package config

import "fmt"

// extractor reads fields in call order and stops at the first failure; every
// call after that returns the zero value without touching the source.
type extractor struct {
	src     Source
	section string
	key     string
	err     error
}

func (x *extractor) fail(section, key string, err error) {
	x.section = section
	x.key = key
	x.err = err
}

func (x *extractor) integer(section, key string) int {
	if x.err != nil {
		return 0
	}
	value, err := x.src.Int(section, key)
	if err == nil && value == sentinelInt {
		err = fmt.Errorf("%s:%s=%d: %w", section, key, value, ErrSentinelValue)
	}
	if err != nil {
		x.fail(section, key, err)
		return 0
	}
	return value
}

func (x *extractor) float(section, key string) float64 {
	if x.err != nil {
		return 0
	}
	value, err := x.src.Float(section, key)
	if err == nil && value == sentinelFloat {
		err = fmt.Errorf("%s:%s=%g: %w", section, key, value, ErrSentinelValue)
	}
	if err != nil {
		x.fail(section, key, err)
		return 0
	}
	return value
}

func (x *extractor) text(section, key string) string {
	if x.err != nil {
		return ""
	}
	value, err := x.src.String(section, key)
	if err == nil && value == sentinelString {
		err = fmt.Errorf("%s:%s=%q: %w", section, key, value, ErrSentinelValue)
	}
	if err != nil {
		x.fail(section, key, err)
		return ""
	}
	return stripQuotes(value)
}

// extractSettings reads every required field in file order. Struct literal
// elements are evaluated left to right, which fixes the order of the lookups.
func extractSettings(src Source) (Settings, *LoadError) {
	x := &extractor{src: src}
	settings := Settings{
		Video: Video{
			FrameWidth:      x.integer(sectionVideo, "FrameWidth"),
			FrameHeight:     x.integer(sectionVideo, "FrameHeight"),
			Codec:           x.text(sectionVideo, "Codec"),
			FrameRate:       x.float(sectionVideo, "FrameRate"),
			StreamCount:     x.integer(sectionVideo, "StreamCount"),
			MaxH265EncDelay: x.integer(sectionVideo, "MaxH265EncDelay"),
			IFrameInterval:  x.integer(sectionVideo, "IFrameInterval"),
		},
		DecoderSharedMemory: DecoderSharedMemory{
			BufferSize: x.integer(sectionDecoderSharedMemory, "BufferSize"),
			TextSize:   x.integer(sectionDecoderSharedMemory, "TextSize"),
		},
		Network: Network{
			BandWidth: x.integer(sectionNetwork, "BandWidth"),
		},
		Debug: Debug{
			Status:   x.integer(sectionDebug, "Status"),
			Output:   x.integer(sectionDebug, "Output"),
			LogLevel: x.text(sectionDebug, "LogLevel"),
			FileName: x.text(sectionDebug, "FileName"),
		},
	}
	if x.err != nil {
		return Settings{}, &LoadError{
			Code:    ResultContentInvalid,
			Section: x.section,
			Key:     x.key,
			Message: fieldFailedMessage(x.section, x.key),
			Err:     x.err,
		}
	}
	return settings, nil
}
