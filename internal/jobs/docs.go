// Package jobs provides scheduled background tasks for the bakery service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxRelayJob - Runs every second and on demand to hand events stored in the
// event store to the event transport (the in-process bus or Kafka)
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(relayJob)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
//	// From a Postgres LISTEN loop:
//	go listener.Run(ctx, jobManager.WakeRelay)
//
// # Scheduling
//
// The relay uses the cron expression "* * * * * *" wrapped in SkipIfStillRunning,
// and a NOTIFY on the event store channel triggers an extra run right away.
//
// # Error Handling
//
// - A batch stops at the first event the transport rejects; events already handed
// over are marked published and the rest is retried by the next run
// - Delivery is at-least-once, so subscribers must tolerate duplicates
package jobs
