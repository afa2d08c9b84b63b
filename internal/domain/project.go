package domain

type Project struct {
	ID              int
	Slug            string
	Name            string
	IsPrivate       bool
	KanbanActivated bool
}
