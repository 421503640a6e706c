package dbtcloud

import "errors"

var (
	// ErrNoJobs indicates that the workspace's environment has no job
	// definition to trigger a build through.
	ErrNoJobs = errors.New("no jobs defined for environment")
	// ErrNoCompletedRuns indicates that the environment has never produced
	// a successful run, so no manifest artifact exists to load asset specs
	// from.
	ErrNoCompletedRuns = errors.New("no completed runs for environment")
)
