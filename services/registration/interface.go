package registration

import (
	"context"

	"farmereats/models"
)

// RegisterGateway is the slice of the remote API the submission flow
// needs. The gateway package's Client satisfies it.
type RegisterGateway interface {
	Register(ctx context.Context, req models.RegisterRequest) (*models.RegisterResponse, error)
}

// Submitter finalizes a wizard session: full re-validation, transport
// serialization, the register call, and outcome interpretation.
type Submitter interface {
	Submit(ctx context.Context, state models.FormState) (*models.Confirmation, error)
}
