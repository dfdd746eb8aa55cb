package mapping

import (
	"github.com/accuflow/accuflow/internal/core/domain"
	"github.com/accuflow/accuflow/internal/models"
)

// ToModelAuditFields converts domain audit fields to the database model.
func ToModelAuditFields(d domain.AuditFields) models.AuditFields {
	return models.AuditFields{
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainAuditFields converts database audit fields to the domain type.
func ToDomainAuditFields(m models.AuditFields) domain.AuditFields {
	return domain.AuditFields{
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
}
