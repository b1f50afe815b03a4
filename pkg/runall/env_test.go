package runall

import (
	"reflect"
	"testing"
)

func TestSeedPackageConfig(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want map[string]map[string]string
	}{
		{
			name: "seeds variables under the package name",
			env: Env{
				"npm_package_name":        "foo",
				"npm_package_config_port": "3000",
				"npm_package_config_host": "localhost",
			},
			want: map[string]map[string]string{
				"foo": {"port": "3000", "host": "localhost"},
			},
		},
		{
			name: "no package name means no scan",
			env: Env{
				"npm_package_config_port": "3000",
			},
			want: map[string]map[string]string{},
		},
		{
			name: "unrelated variables are ignored",
			env: Env{
				"npm_package_name":    "foo",
				"npm_config_loglevel": "warn",
				"PATH":                "/usr/bin",
			},
			want: map[string]map[string]string{},
		},
		{
			name: "bare prefix contributes nothing",
			env: Env{
				"npm_package_name":    "foo",
				"npm_package_config_": "x",
			},
			want: map[string]map[string]string{},
		},
		{
			name: "empty environment",
			env:  Env{},
			want: map[string]map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := seedPackageConfig(tt.env)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("seedPackageConfig(%v) = %v, want %v", tt.env, got, tt.want)
			}
		})
	}
}

func TestParseSeedsFromEnv(t *testing.T) {
	env := Env{
		"npm_package_name":        "foo",
		"npm_package_config_port": "3000",
		"npm_config_loglevel":     "silent",
	}

	set := mustParse(t, nil, GroupInit{}, Options{Env: env})

	if !set.Silent {
		t.Error("Silent = false, want true for loglevel silent")
	}
	if got := set.PackageConfig["foo"]["port"]; got != "3000" {
		t.Errorf(`PackageConfig["foo"]["port"] = %q, want "3000"`, got)
	}

	// An overwrite directive beats the seeded value.
	set = mustParse(t, []string{"--foo:port=4000"}, GroupInit{}, Options{Env: env})
	if got := set.PackageConfig["foo"]["port"]; got != "4000" {
		t.Errorf(`PackageConfig["foo"]["port"] = %q, want "4000"`, got)
	}
}

func TestParseLogLevelNotSilent(t *testing.T) {
	set := mustParse(t, nil, GroupInit{}, Options{Env: Env{"npm_config_loglevel": "warn"}})
	if set.Silent {
		t.Error("Silent = true, want false for loglevel warn")
	}
}

func TestEnvGet(t *testing.T) {
	env := Env{"a": "1"}
	if got := env.Get("a"); got != "1" {
		t.Errorf(`Get("a") = %q, want "1"`, got)
	}
	if got := env.Get("missing"); got != "" {
		t.Errorf(`Get("missing") = %q, want ""`, got)
	}
}

func TestSnapshot(t *testing.T) {
	t.Setenv("RUNALL_SNAPSHOT_PROBE", "probe-value")

	env := Snapshot()
	if got := env.Get("RUNALL_SNAPSHOT_PROBE"); got != "probe-value" {
		t.Errorf(`Snapshot().Get("RUNALL_SNAPSHOT_PROBE") = %q, want "probe-value"`, got)
	}
}
