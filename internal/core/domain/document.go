package domain

// Document kinds.
const (
	DocumentTypeDocument = "document"
	DocumentTypeImage    = "image"
	DocumentTypeAudio    = "audio"
	DocumentTypeCode     = "code"
)

// Document is a file attached to a project. The file body lives elsewhere;
// only the reference is stored here.
type Document struct {
	ID           int64  `json:"id" bson:"_id"`
	ProjectID    int64  `json:"project_id" bson:"project_id"`
	Name         string `json:"name" bson:"name"`
	Type         string `json:"type" bson:"type"`
	URL          string `json:"url" bson:"url"`
	UploadedByID int64  `json:"uploaded_by_id" bson:"uploaded_by_id"`
}
