package common

import (
	"runtime"
	"strings"
)

type RuntimeOSDetector struct{}

func (r RuntimeOSDetector) GetOS() string {
	return runtime.GOOS
}

// SetEnv returns a copy of env with key set to value, replacing any
// existing entries for key.
func SetEnv(env []string, key, value string) []string {
	prefix := key + "="
	out := make([]string, 0, len(env)+1)
	for _, kv := range env {
		if strings.HasPrefix(kv, prefix) {
			continue
		}
		out = append(out, kv)
	}
	return append(out, prefix+value)
}
