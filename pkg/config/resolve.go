// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"os"
	"strings"
)

// LookupFunc has the shape of os.LookupEnv
type LookupFunc func(name string) (string, bool)

// Candidate is one named, possibly empty, configuration value
type Candidate struct {
	Name  string
	Value string
}

// Domain is a resolved effective domain and the source that supplied it
type Domain struct {
	Value  string
	Source string
}

// Resolve returns the first candidate that is non-empty once trimmed, or fallback
func Resolve(candidates []string, fallback string) string {
	for _, c := range candidates {
		if v := strings.TrimSpace(c); v != "" {
			return v
		}
	}
	return fallback
}

// ResolveNamed is Resolve over named candidates, reporting which one won
func ResolveNamed(candidates []Candidate, fallback string) Domain {
	for _, c := range candidates {
		if v := strings.TrimSpace(c.Value); v != "" {
			return Domain{Value: v, Source: c.Name}
		}
	}
	return Domain{Value: fallback, Source: DefaultSourceName}
}

// EnvLookup reads the process environment
func EnvLookup() LookupFunc {
	return os.LookupEnv
}

// MapLookup reads from a fixed map, mostly for tests and dotenv values
func MapLookup(values map[string]string) LookupFunc {
	return func(name string) (string, bool) {
		v, ok := values[name]
		return v, ok
	}
}

// Layered consults each lookup in order and returns the first non-empty value
func Layered(lookups ...LookupFunc) LookupFunc {
	return func(name string) (string, bool) {
		found := false
		for _, l := range lookups {
			v, ok := l(name)
			if !ok {
				continue
			}
			found = true
			if strings.TrimSpace(v) != "" {
				return v, true
			}
		}
		return "", found
	}
}
