// Package profile writes runtime profiles around a unit of work.
//
// A [Config] holds the output path of each profile, empty meaning disabled,
// and binds them to CLI flags with [Config.RegisterFlags]. [Config.Start]
// begins a [Session]; [Session.Stop] ends CPU profiling, writes the enabled
// snapshot profiles, and reports what was written:
//
//	cfg := profile.NewConfig()
//	cfg.RegisterFlags(cmd.Flags())
//
//	// After flag parsing:
//	s, err := cfg.Start()
//	if err != nil {
//		return err
//	}
//
//	work()
//
//	written, err := s.Stop()
//
// CPU profiling is process-wide, so only one session with a CPU profile may
// run at a time.
package profile
