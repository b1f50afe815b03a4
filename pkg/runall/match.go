package runall

import (
	"path"
	"strings"
	"unicode"
)

// Task is one resolved script invocation: the script name plus any
// arguments the pattern carried after its first whitespace.
type Task struct {
	Name string
	Args string
}

// MatchTasks resolves glob patterns against the script names of a
// package. Results preserve pattern order, then script order within a
// pattern; a script matched by several patterns keeps its first
// occurrence. A pattern that matches no script is an error.
//
// The name part of a pattern uses path.Match globbing: "*" crosses
// ":" but not "/", so "build:*" matches "build:js" and "build:js:min"
// alike. A malformed glob falls back to literal comparison.
func MatchTasks(scripts []string, patterns []string) ([]Task, error) {
	var tasks []Task
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		name, args := splitPattern(pattern)

		matched := false
		for _, script := range scripts {
			ok, err := path.Match(name, script)
			if err != nil {
				ok = name == script
			}
			if !ok {
				continue
			}
			matched = true
			if seen[script] {
				continue
			}
			seen[script] = true
			tasks = append(tasks, Task{Name: script, Args: args})
		}

		if !matched {
			return nil, taskNotFound(pattern)
		}
	}
	return tasks, nil
}

// splitPattern splits a pattern at its first whitespace rune into the
// matchable task name and the argument tail.
func splitPattern(pattern string) (name, args string) {
	for i, r := range pattern {
		if unicode.IsSpace(r) {
			return pattern[:i], strings.TrimLeftFunc(pattern[i:], unicode.IsSpace)
		}
	}
	return pattern, ""
}
