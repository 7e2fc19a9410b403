// Package study_session runs interactive study sessions over the words of
// one or more categories. Each session owns a study.Scheduler and is kept
// in memory; idle sessions expire after a configurable TTL and are swept
// periodically by a gocron job.
package study_session
