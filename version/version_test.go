package version_test

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.jacobcolvin.com/placelog/version"
)

func TestGet(t *testing.T) {
	t.Parallel()

	info := version.Get()

	assert.NotEmpty(t, info.Version)
	assert.NotEmpty(t, info.Revision)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestInfoString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		info version.Info
		want string
	}{
		"without build date": {
			info: version.Info{
				Version:   "v1.2.3",
				Revision:  "abc123",
				GoVersion: "go1.25.0",
				Platform:  "linux/amd64",
			},
			want: "placelog v1.2.3 (abc123, go1.25.0, linux/amd64)",
		},
		"with build date": {
			info: version.Info{
				Version:   "v1.2.3",
				Revision:  "abc123-dirty",
				BuildDate: "2024-01-02",
				GoVersion: "go1.25.0",
				Platform:  "darwin/arm64",
			},
			want: "placelog v1.2.3 (abc123-dirty, go1.25.0, darwin/arm64) built 2024-01-02",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, tc.info.String())
		})
	}
}
