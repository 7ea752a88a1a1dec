package scheduler

var CronExpression = cronExpression
