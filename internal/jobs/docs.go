// Package jobs provides scheduled background tasks for the order service.
//
// Jobs run on github.com/robfig/cron/v3 with the six-field (seconds) format.
//
// # Available Jobs
//
// OverdueOrdersJob reports open orders whose planned end date has passed
// without a finish. Under the coarse availability rule such an order keeps its
// car in use, so the job logs a warning listing their ids. It is read-only.
//
// # Usage
//
//	overdue := jobs.NewOverdueOrdersJob(overdueHandler, kernel.SystemClock{}, cfg.OverdueOrdersSchedule, logger)
//	jobManager := jobs.NewJobManager(overdue)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and retried on the next tick. A job that fails to
// start stops the jobs already running.
package jobs
