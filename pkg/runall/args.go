// Package runall implements the argument-parsing front end of an
// npm-run-all style task runner: it turns a raw argument vector into
// ordered run groups, global flags, and package-config overrides, and
// resolves task-name patterns against a package's script names.
//
// The package performs no process execution and produces no output;
// callers turn the returned ArgumentSet into task runs themselves.
package runall

// RunGroup is a set of task patterns sharing an execution mode and an
// error-continuation policy. Groups are created in the order their
// separator flags appear and that order is meaningful.
type RunGroup struct {
	Parallel        bool
	ContinueOnError bool
	PrintLabel      bool
	PrintName       bool
	Patterns        []string
}

// GroupInit seeds the implicit first group of a parse. Groups created
// later by separator flags never inherit these values.
type GroupInit struct {
	Parallel        bool
	ContinueOnError bool
	PrintLabel      bool
	PrintName       bool
}

// ArgumentSet is the result of parsing one argument vector.
type ArgumentSet struct {
	// Groups always has at least one entry: the implicit first group
	// exists even for an empty argument vector.
	Groups []RunGroup

	Help    bool
	Version bool
	Silent  bool

	// SingleMode is fixed at construction. When set, separator flags
	// may not create additional groups.
	SingleMode bool

	// PackageConfig maps package name -> variable name -> value. It is
	// seeded from the environment and mutated by overwrite directives.
	// A package has no entry until its first write.
	PackageConfig map[string]map[string]string
}

// NonEmptyGroups returns the groups that carry at least one pattern,
// in order. A separator flag always appends a structurally new group,
// so invocations like "-s a -p b" leave the implicit first group
// empty; runners consume this filtered view.
func (s *ArgumentSet) NonEmptyGroups() []RunGroup {
	groups := make([]RunGroup, 0, len(s.Groups))
	for _, group := range s.Groups {
		if len(group.Patterns) > 0 {
			groups = append(groups, group)
		}
	}
	return groups
}

// lastGroup returns the most recently appended group. Groups is never
// empty, so the index is always valid.
func (s *ArgumentSet) lastGroup() *RunGroup {
	return &s.Groups[len(s.Groups)-1]
}

func (s *ArgumentSet) addGroup(parallel, continueOnError bool) {
	s.Groups = append(s.Groups, RunGroup{
		Parallel:        parallel,
		ContinueOnError: continueOnError,
	})
}
