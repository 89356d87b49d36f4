package cli

import (
	mprofile "github.com/bygui86/multi-profile/v2"
	"github.com/minio/cli"
)

// profilers maps each hidden profile flag to the profile it starts.
var profilers = []struct {
	flag  string
	start func(*mprofile.Config) *mprofile.Profile
}{
	{"cpu", func(c *mprofile.Config) *mprofile.Profile { return mprofile.CPUProfile(c).Start() }},
	{"mem", func(c *mprofile.Config) *mprofile.Profile { return mprofile.MemProfile(c).Start() }},
	{"block", func(c *mprofile.Config) *mprofile.Profile { return mprofile.BlockProfile(c).Start() }},
	{"mutex", func(c *mprofile.Config) *mprofile.Profile { return mprofile.MutexProfile(c).Start() }},
	{"trace", func(c *mprofile.Config) *mprofile.Profile { return mprofile.TraceProfile(c).Start() }},
	{"threads", func(c *mprofile.Config) *mprofile.Profile { return mprofile.ThreadCreationProfile(c).Start() }},
}

// startProfiles starts every requested profile and returns the function
// stopping them, nil when none was requested.
func startProfiles(ctx *cli.Context) func() {
	cfg := &mprofile.Config{
		Path:           ctx.String("pprofdir"),
		MemProfileRate: 4096,
		MemProfileType: "heap",
	}
	var running []*mprofile.Profile
	for _, p := range profilers {
		if ctx.Bool(p.flag) {
			running = append(running, p.start(cfg))
		}
	}
	if len(running) == 0 {
		return nil
	}
	return func() {
		for _, p := range running {
			p.Stop()
		}
	}
}
