package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Tags     bool
	Effects  bool
	Classify bool
}

var d *debug

func init() {
	d = &debug{}
	d.Tags = boolEnv("CSTML_DEBUG_TAGS")
	d.Effects = boolEnv("CSTML_DEBUG_EFFECTS")
	d.Classify = boolEnv("CSTML_DEBUG_CLASSIFY")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// Tags reports whether every tag pulled from the input is logged.
func Tags() bool {
	return d.Tags
}

// Effects reports whether every effect run is logged.
func Effects() bool {
	return d.Effects
}

// Classify reports whether highlight classifications are logged.
func Classify() bool {
	return d.Classify
}

func Logf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	if n := len(format); n == 0 || format[n-1] != '\n' {
		os.Stderr.Write([]byte{'\n'})
	}
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(append(d, '\n'))
}
