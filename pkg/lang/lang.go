package lang

import (
	"github.com/abadojack/whatlanggo"
)

type Info struct {
	Language   string
	Code       string
	Confidence float64
	Reliable   bool
}

// Detect classifies the natural language of s.
func Detect(s string) Info {
	info := whatlanggo.Detect(s)
	return Info{
		Language:   info.Lang.String(),
		Code:       info.Lang.Iso6393(),
		Confidence: info.Confidence,
		Reliable:   info.IsReliable(),
	}
}
