package memstore

// Store bundles one repository per entity kind. Each Store is fully
// isolated, so tests can instantiate one per test case.
type Store struct {
	Users         *UserRepository
	Projects      *ProjectRepository
	Members       *MemberRepository
	Tasks         *TaskRepository
	Comments      *CommentRepository
	Notifications *NotificationRepository
	Documents     *DocumentRepository
}

func New() *Store {
	return &Store{
		Users:         NewUserRepository(),
		Projects:      NewProjectRepository(),
		Members:       NewMemberRepository(),
		Tasks:         NewTaskRepository(),
		Comments:      NewCommentRepository(),
		Notifications: NewNotificationRepository(),
		Documents:     NewDocumentRepository(),
	}
}
