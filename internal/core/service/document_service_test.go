package service

import (
	"context"
	"errors"
	"testing"

	"github.com/argomobile/studio-api/internal/core/domain"
	"github.com/argomobile/studio-api/internal/core/ports"
)

func validDocumentInput(name string) ports.CreateDocumentInput {
	return ports.CreateDocumentInput{
		Name: name,
		Type: domain.DocumentTypeImage,
		URL:  "https://cdn.studio.dev/assets/" + name,
	}
}

func TestCreateDocument_RequiresProjectAccess(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	stranger := e.seedUser(t, "zoe", domain.RoleDesigner)
	project := e.seedProject(t, owner, "Nebula Run")

	if _, err := e.documents.CreateDocument(ctx, stranger, project.ID, validDocumentInput("boss.png")); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger upload: expected ErrForbidden, got %v", err)
	}

	doc, err := e.documents.CreateDocument(ctx, owner, project.ID, validDocumentInput("boss.png"))
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}
	if doc.UploadedByID != owner.ID {
		t.Fatalf("uploader = %d, want %d", doc.UploadedByID, owner.ID)
	}

	in := validDocumentInput("bad")
	in.Type = "spreadsheet" // not a document type
	if _, err := e.documents.CreateDocument(ctx, owner, project.ID, in); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("bad type: expected ErrValidation, got %v", err)
	}
}

func TestDeleteDocument_UploaderOwnerAdmin(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	uploader := e.seedUser(t, "bruno", domain.RoleDesigner)
	stranger := e.seedUser(t, "zoe", domain.RoleProgrammer)
	project := e.seedProject(t, owner, "Nebula Run")
	if _, err := e.projects.AddMember(ctx, owner, project.ID, uploader.ID, domain.RoleInProjectDesigner); err != nil {
		t.Fatalf("AddMember: %v", err)
	}

	doc, err := e.documents.CreateDocument(ctx, uploader, project.ID, validDocumentInput("boss.png"))
	if err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}

	if err := e.documents.DeleteDocument(ctx, stranger, doc.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger delete: expected ErrForbidden, got %v", err)
	}
	if err := e.documents.DeleteDocument(ctx, uploader, doc.ID); err != nil {
		t.Fatalf("uploader delete: %v", err)
	}
	if err := e.documents.DeleteDocument(ctx, uploader, doc.ID); !errors.Is(err, domain.ErrDocumentNotFound) {
		t.Fatalf("second delete: expected ErrDocumentNotFound, got %v", err)
	}
}

func TestListDocuments_ScopedToProjectReaders(t *testing.T) {
	e := newEnv(t)
	ctx := context.Background()
	owner := e.seedUser(t, "ana", domain.RoleProgrammer)
	stranger := e.seedUser(t, "zoe", domain.RoleDesigner)
	project := e.seedProject(t, owner, "Nebula Run")
	if _, err := e.documents.CreateDocument(ctx, owner, project.ID, validDocumentInput("gdd.md")); err != nil {
		t.Fatalf("CreateDocument: %v", err)
	}

	if _, err := e.documents.ListDocuments(ctx, stranger, project.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("stranger list: expected ErrForbidden, got %v", err)
	}
	docs, err := e.documents.ListDocuments(ctx, owner, project.ID)
	if err != nil {
		t.Fatalf("ListDocuments: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("got %d documents, want 1", len(docs))
	}
}
