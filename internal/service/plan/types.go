package plan

import "time"

type GenerateParams struct {
	Date           time.Time
	LearningPace   int
	AvailableHours int
}

type CompleteTopicParams struct {
	Date          time.Time
	TopicIndex    int
	ActualMinutes int
}
