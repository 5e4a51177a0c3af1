// Package jobs provides scheduled background tasks for the order tracking
// system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OrderStatsJob - Runs once a minute to log order counts per status for
// operational visibility.
//
// # Usage
//
//	job := jobs.NewOrderStatsJob(statsHandler, logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start stats job:", err)
//	}
//	defer job.Stop()
//
// # Error Handling
//
// Query failures are logged and the job keeps its schedule; a transient
// database problem must not stop future runs.
package jobs
