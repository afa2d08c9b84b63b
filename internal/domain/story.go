package domain

// StoryRecord is the minimal slice of a Taiga user story the CFD engine
// needs. CreatedDate is kept as the raw ISO-8601 string from the API;
// normalizing it to an instant is the engine's job.
type StoryRecord struct {
	ID          int
	Ref         int
	Subject     string
	CreatedDate string
	StatusID    int
}
