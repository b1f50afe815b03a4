package runall

import (
	"regexp"
	"strings"
)

// Options configures a single Parse call.
type Options struct {
	// SingleMode forbids defining more than one run group.
	SingleMode bool

	// Env overrides the environment snapshot used to seed the silent
	// flag and the package config. When nil, Parse reads the process
	// environment once.
	Env Env
}

// overwritePattern matches --<package>:<variable>[=<value>] directives.
var overwritePattern = regexp.MustCompile(`^--([^:]+?):([^=]+?)(?:=(.*))?$`)

// bundlePattern matches concatenated short flags such as -clnv. Only
// single-letter flags may appear in a bundle, and a bundle has at
// least two of them ("-c" alone is an ordinary flag token).
var bundlePattern = regexp.MustCompile(`^-[chlnpPsSv]{2,}$`)

// Parse scans tokens left to right into a fresh ArgumentSet.
//
// Flag tokens mutate either the global flags or the current last
// group; separator flags append a new group; --pkg:var=value tokens
// overwrite package config; every other token that does not start
// with a dash is appended to the last group's patterns. Parsing stops
// at the first invalid token and returns an Invalid Option error.
//
// Parse is used instead of the stdlib flag package because the
// grammar cannot be expressed there: separator flags are positional,
// patterns interleave freely with flags, and short flags concatenate.
func Parse(tokens []string, init GroupInit, opts Options) (*ArgumentSet, error) {
	env := opts.Env
	if env == nil {
		env = Snapshot()
	}

	set := &ArgumentSet{
		Silent:        env.Get(envLogLevel) == "silent",
		SingleMode:    opts.SingleMode,
		PackageConfig: seedPackageConfig(env),
		Groups: []RunGroup{{
			Parallel:        init.Parallel,
			ContinueOnError: init.ContinueOnError,
			PrintLabel:      init.PrintLabel,
			PrintName:       init.PrintName,
		}},
	}

	if err := set.parseTokens(tokens); err != nil {
		return nil, err
	}
	return set, nil
}

// parseTokens is the core scanner. Bundle expansion re-enters it with
// the exploded short flags so that every flag still produces exactly
// one state mutation.
func (s *ArgumentSet) parseTokens(tokens []string) error {
	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		switch token {
		case "--color", "--no-color":
			// Pass-through flags of the underlying runner. Recognized
			// so they are not reported as unknown; no effect here.

		case "-c", "--continue-on-error":
			s.lastGroup().ContinueOnError = true
		case "-h", "--help":
			s.Help = true
		case "-l", "--print-label":
			s.lastGroup().PrintLabel = true
		case "-n", "--print-name":
			s.lastGroup().PrintName = true
		case "--silent":
			s.Silent = true
		case "-v", "--version":
			s.Version = true

		case "-s", "--sequential", "--serial":
			switch {
			case !s.SingleMode:
				s.addGroup(false, false)
			case token == "-s":
				// Single-group invocations historically accepted the
				// short flag as a silence toggle. Keep that exact
				// tolerance; the long spellings stay invalid.
				s.Silent = true
			default:
				return invalidOption(token)
			}
		case "-S", "--sequential-strict", "--serial-strict":
			if s.SingleMode {
				return invalidOption(token)
			}
			s.addGroup(false, true)
		case "-p", "--parallel":
			if s.SingleMode {
				return invalidOption(token)
			}
			s.addGroup(true, false)
		case "-P", "--parallel-strict":
			if s.SingleMode {
				return invalidOption(token)
			}
			s.addGroup(true, true)

		default:
			switch {
			case overwritePattern.MatchString(token):
				// Submatch indexes distinguish "--a:b=" (empty value)
				// from "--a:b" (value comes from the next token).
				m := overwritePattern.FindStringSubmatchIndex(token)
				packageName := token[m[2]:m[3]]
				variable := token[m[4]:m[5]]
				var value string
				if m[6] >= 0 {
					value = token[m[6]:m[7]]
				} else if i+1 < len(tokens) {
					i++
					value = tokens[i]
				}
				overwriteConfig(s.PackageConfig, packageName, variable, value)

			case bundlePattern.MatchString(token):
				exploded := make([]string, 0, len(token)-1)
				for _, letter := range token[1:] {
					exploded = append(exploded, "-"+string(letter))
				}
				if err := s.parseTokens(exploded); err != nil {
					return err
				}

			case strings.HasPrefix(token, "-"):
				return invalidOption(token)

			default:
				last := s.lastGroup()
				last.Patterns = append(last.Patterns, token)
			}
		}
	}
	return nil
}
