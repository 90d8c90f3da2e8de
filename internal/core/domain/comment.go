package domain

import "time"

// Comment is a single entry in a task's append-only discussion log.
type Comment struct {
	ID        int64     `json:"id" bson:"_id"`
	TaskID    int64     `json:"task_id" bson:"task_id"`
	Content   string    `json:"content" bson:"content"`
	UserID    int64     `json:"user_id" bson:"user_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
