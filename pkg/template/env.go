package template

import "os"

// LookupFunc reads one environment variable, like os.LookupEnv
type LookupFunc func(key string) (string, bool)

// EnvValues resolves an env-map (question-facing name -> OS variable) against
// lookup. Only variables that are set and non-empty appear in the result.
func EnvValues(envMap map[string]string, lookup LookupFunc) map[string]string {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	values := make(map[string]string, len(envMap))
	for name, variable := range envMap {
		if value, ok := lookup(variable); ok && value != "" {
			values[name] = value
		}
	}
	return values
}

// Environment answers =ENV[NAME] references for one resolution pass
type Environment struct {
	envMap map[string]string
	values map[string]string
	lookup LookupFunc
}

// NewEnvironment snapshots the mapped variables
func NewEnvironment(envMap map[string]string, lookup LookupFunc) *Environment {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Environment{
		envMap: envMap,
		values: EnvValues(envMap, lookup),
		lookup: lookup,
	}
}

// Value returns the non-empty value for name. A name present in the env-map
// only ever resolves through its mapped variable; any other name is read
// from the process environment directly.
func (e *Environment) Value(name string) (string, bool) {
	if _, mapped := e.envMap[name]; mapped {
		value, ok := e.values[name]
		return value, ok
	}
	value, ok := e.lookup(name)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}
