package conf

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"
)

// flagType is implemented by every Flag regardless of its value type.
type flagType interface {
	envName() string
	clear()
	text() string
}

// definedFlags keeps every registered flag by name, so that packages sharing a flag
// get the same definition instead of a kingpin duplicate error.
var definedFlags = map[string]flagType{}

// Flag is an option read from the command line or from OCNDIAG_<NAME> environment variable.
type Flag[T any] struct {
	*kingpin.FlagClause
	// defaultText is the default as kingpin sees it, used to detect conflicting redefinitions.
	defaultText  string
	defaultValue T
	defaults     func() T
	value        *T
}

// Concrete flag types.
type (
	StringFlag   = Flag[string]
	IntFlag      = Flag[int]
	BoolFlag     = Flag[bool]
	DurationFlag = Flag[time.Duration]
	SliceFlag    = Flag[[]string]
)

func defineFlag[T any](name, description, defaultText string, defaults func() T, bind func(*kingpin.FlagClause) *T) *Flag[T] {
	if defined, ok := definedFlags[name]; ok {
		flag, ok := defined.(*Flag[T])
		if !ok {
			panic(fmt.Sprintf("flag %q was redefined with different type", name))
		}
		if flag.defaultText != defaultText {
			panic(fmt.Sprintf("flag %q was redefined with different default %q (was %q)", name, defaultText, flag.defaultText))
		}
		return flag
	}

	clause := app.Flag(name, description).OverrideDefaultFromEnvar(envName(name))
	if defaultText != "" {
		clause.Default(defaultText)
	}

	flag := &Flag[T]{
		FlagClause:   clause,
		defaultText:  defaultText,
		defaultValue: defaults(),
		defaults:     defaults,
	}
	flag.value = bind(clause)
	definedFlags[name] = flag
	isEnvParsed = false
	return flag
}

// Value returns parsed value of the flag.
// NOTE: before ParseFlags (or ParseEnv) it returns the default.
func (f *Flag[T]) Value() T {
	if !isEnvParsed {
		return f.defaults()
	}
	return *f.value
}

// envName returns environment variable overriding the flag, e.g. "work_dir" is "OCNDIAG_WORK_DIR".
func (f *Flag[T]) envName() string {
	return envName(f.Model().Name)
}

// clear unsets environment variable of the flag.
func (f *Flag[T]) clear() {
	os.Unsetenv(f.envName())
}

// text formats current value the way it is given on the command line.
func (f *Flag[T]) text() string {
	if list, ok := interface{}(f.Value()).([]string); ok {
		return strings.Join(list, stringListDelimiter)
	}
	return fmt.Sprint(f.Value())
}

// NewStringFlag defines string flag.
func NewStringFlag(flagName string, description string, defaultValue string) *StringFlag {
	return defineFlag(flagName, description, defaultValue,
		func() string { return defaultValue },
		func(c *kingpin.FlagClause) *string { return c.String() })
}

// NewIntFlag defines int flag.
func NewIntFlag(flagName string, description string, defaultValue int) *IntFlag {
	return defineFlag(flagName, description, strconv.Itoa(defaultValue),
		func() int { return defaultValue },
		func(c *kingpin.FlagClause) *int { return c.Int() })
}

// NewBoolFlag defines bool flag.
func NewBoolFlag(flagName string, description string, defaultValue bool) *BoolFlag {
	return defineFlag(flagName, description, strconv.FormatBool(defaultValue),
		func() bool { return defaultValue },
		func(c *kingpin.FlagClause) *bool { return c.Bool() })
}

// NewDurationFlag defines duration flag, values use time.ParseDuration syntax.
func NewDurationFlag(flagName string, description string, defaultValue time.Duration) *DurationFlag {
	return defineFlag(flagName, description, defaultValue.String(),
		func() time.Duration { return defaultValue },
		func(c *kingpin.FlagClause) *time.Duration { return c.Duration() })
}

// NewSliceFlag defines flag holding comma separated list of strings.
// It can be repeated on the command line, every occurrence adds elements.
func NewSliceFlag(flagName string, description string, elemsInDefaultSlice ...string) *SliceFlag {
	return defineFlag(flagName, description, strings.Join(elemsInDefaultSlice, stringListDelimiter),
		func() []string { return append([]string{}, elemsInDefaultSlice...) },
		func(c *kingpin.FlagClause) *[]string { return StringList(c) })
}
