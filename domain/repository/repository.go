package repository

import (
	"context"

	"github.com/pyama86/safelink/domain/entity"
)

type IncidentSubmitter interface {
	SubmitIncident(context.Context, string) (*entity.Incident, error)
}

type IncidentLister interface {
	Incidents(context.Context) ([]entity.Incident, error)
}

type HealthChecker interface {
	Health(context.Context) (string, error)
}

type IncidentAPI interface {
	IncidentSubmitter
	IncidentLister
	HealthChecker
}
