package surreal

import (
	"strings"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/wahidrahimi/ragavani-backend/internal/domain"
)

// NewRecordID generates a fresh record id for the given table. Callers never
// choose ids: every create stamps a server-generated id into the document.
func NewRecordID(table string) models.RecordID {
	return models.NewRecordID(table, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

// IDString extracts the plain id component of a record id. Documents expose
// this string as their "id" field on the wire.
func IDString(rid *models.RecordID) string {
	if rid == nil {
		return ""
	}
	if s, ok := rid.ID.(string); ok {
		return s
	}
	return rid.String()
}

// ToDocRef converts a record id into the domain's normalized (collection, id)
// pair. Reference matching compares these pairs, never driver objects.
func ToDocRef(rid *models.RecordID) domain.DocRef {
	if rid == nil {
		return domain.DocRef{}
	}
	return domain.DocRef{Collection: rid.Table, ID: IDString(rid)}
}

// FromDocRef converts the domain pair back into a record id.
func FromDocRef(ref domain.DocRef) models.RecordID {
	return models.NewRecordID(ref.Collection, ref.ID)
}
