// Package timezone keeps every timestamp the application writes in one
// configured location.
//
//	timezone.Init(cfg)                        // once, at startup
//	now := timezone.Now()                     // current time in app timezone
//	s := timezone.Format(t, "Jan 2, 2006")    // render in app timezone
//
// The timezone is configured via APP_TIMEZONE using IANA names such as
// "UTC" or "Europe/London". Until Init runs, UTC is used.
package timezone
