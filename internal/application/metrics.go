package application

import "expvar"

// Counters published on /debug/vars.
var (
	registrationsTotal   = expvar.NewInt("registrations")
	partialRegistrations = expvar.NewInt("registrations_without_mentor_profile")
	loginsOK             = expvar.NewInt("logins_ok")
	loginsFailed         = expvar.NewInt("logins_failed")
)
