package conf

import (
	"fmt"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"
)

const stringListDelimiter = ","

// StringListVar is a custom kingpin parser which resolves flag's parameters which consists of
// string slice delimited by `stringListDelimiter`.
// For instance for flag defined like this:
// `flag = StringList(kingpin.Flag("plots", "help"))`
//
// When user specifies `--plots=CPLLOG,DWBC --plots=CPLLOG_TS` the flag holds
// CPLLOG, DWBC and CPLLOG_TS. Repeated elements are kept once.
type StringListVar []string

// Set parses the input string and appends it to the slice. Implements kingpin.Value.
func (s *StringListVar) Set(value string) error {
	for _, elem := range strings.Split(value, stringListDelimiter) {
		elem = strings.TrimSpace(elem)
		if elem == "" || s.contains(elem) {
			continue
		}
		*s = append(*s, elem)
	}
	return nil
}

func (s *StringListVar) contains(elem string) bool {
	for _, existing := range *s {
		if existing == elem {
			return true
		}
	}
	return false
}

// String returns string value from StringListVar. Implements kingpin.Value.
func (s *StringListVar) String() string {
	return fmt.Sprintf("%v", *s)
}

// IsCumulative implements optional interface (kingpin.repeatableFlag) for flags that can be repeated.
func (s *StringListVar) IsCumulative() bool {
	return true
}

// StringList is a helper for defining kingpin flags.
func StringList(s kingpin.Settings) (target *[]string) {
	target = new([]string)
	s.SetValue((*StringListVar)(target))
	return
}
